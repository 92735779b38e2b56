package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"agendalab/config"
	_ "agendalab/docs"
	"agendalab/internal/handlers/auth"
	"agendalab/internal/handlers/booking"
	"agendalab/internal/handlers/health"
	"agendalab/internal/handlers/lab"
	"agendalab/internal/handlers/material"
	"agendalab/internal/handlers/notification"
	"agendalab/internal/handlers/report"
	"agendalab/internal/handlers/schedule"
	"agendalab/internal/handlers/user"
	"agendalab/transport/http/middleware"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	User         user.Handler
	Lab          lab.Handler
	Booking      booking.Handler
	Schedule     schedule.Handler
	Material     material.Handler
	Notification notification.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	appMiddleware  middleware.AppMiddleware
	authRole       middleware.AuthRole
	cfg            *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.cfg.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.cfg.App.CORS.AllowCredentials,
			AllowedHeaders:   r.cfg.App.CORS.AllowedHeaders,
			AllowedMethods:   r.cfg.App.CORS.AllowedMethods,
			AllowedOrigins:   r.cfg.App.CORS.AllowedOrigins,
			MaxAge:           r.cfg.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.appMiddleware.Tracing)
	router.Use(r.appMiddleware.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.authRole.APIKey)
		routerGroup.Use(r.authRole.Auth)
		routerGroup.Use(r.authRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Lab.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Material.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		appMiddleware:  appMiddleware,
		authRole:       authRole,
		cfg:            cfg,
	}
}
