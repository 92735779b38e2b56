//go:build wireinject
// +build wireinject

package di

import (
	"agendalab/config"
	"agendalab/infras/jwt"
	"agendalab/infras/kafka"
	"agendalab/infras/otel"
	"agendalab/infras/postgres"
	"agendalab/infras/redis"
	"agendalab/infras/s3"
	"agendalab/permissions"
	"agendalab/shared/cache"
	"agendalab/transport/http"
	"agendalab/transport/http/middleware"
	"agendalab/transport/http/router"

	authService "agendalab/internal/domains/auth/service"
	bookingRepository "agendalab/internal/domains/booking/repository"
	bookingService "agendalab/internal/domains/booking/service"
	labRepository "agendalab/internal/domains/lab/repository"
	labService "agendalab/internal/domains/lab/service"
	materialRepository "agendalab/internal/domains/material/repository"
	materialService "agendalab/internal/domains/material/service"
	movementRepository "agendalab/internal/domains/movement/repository"
	notificationRepository "agendalab/internal/domains/notification/repository"
	notificationService "agendalab/internal/domains/notification/service"
	reportRepository "agendalab/internal/domains/report/repository"
	reportService "agendalab/internal/domains/report/service"
	scheduleService "agendalab/internal/domains/schedule/service"
	userRepository "agendalab/internal/domains/user/repository"
	userService "agendalab/internal/domains/user/service"

	authHandler "agendalab/internal/handlers/auth"
	bookingHandler "agendalab/internal/handlers/booking"
	healthHandler "agendalab/internal/handlers/health"
	labHandler "agendalab/internal/handlers/lab"
	materialHandler "agendalab/internal/handlers/material"
	notificationHandler "agendalab/internal/handlers/notification"
	reportHandler "agendalab/internal/handlers/report"
	scheduleHandler "agendalab/internal/handlers/schedule"
	userHandler "agendalab/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var labDomain = wire.NewSet(
	labRepository.New,
	labService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var materialDomain = wire.NewSet(
	movementRepository.New,
	materialRepository.New,
	materialService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	labDomain,
	bookingDomain,
	scheduleDomain,
	materialDomain,
	notificationDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	labHandler.New,
	bookingHandler.New,
	scheduleHandler.New,
	materialHandler.New,
	notificationHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
