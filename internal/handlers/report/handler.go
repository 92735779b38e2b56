package report

import (
	"net/http"

	"agendalab/infras/otel"
	"agendalab/internal/domains/report/service"
	"agendalab/shared/constant"
	"agendalab/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard returns aggregated usage numbers for a day.
// @Summary Get the dashboard report
// @Description Retrieve booking and stock aggregates for a given date. Defaults to today when no date is given.
// @Tags Report
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardResponse "Dashboard report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestQueryDate)

	res, err := handler.service.GetDashboard(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard report retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
