package schedule

import (
	"net/http"

	"agendalab/infras/otel"
	"agendalab/internal/domains/schedule/service"
	"agendalab/shared/constant"
	"agendalab/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/availability", handler.GetAvailability)
	})
}

// GetSlots returns the fixed time slot catalog.
// @Summary Get the time slot catalog
// @Description Retrieve the fixed list of bookable time slots.
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} dto.SlotCatalogResponse "Slot catalog"
// @Router /v1/schedule/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	res := handler.service.GetCatalog(ctx)

	scope.AddEvent("Slot catalog retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailability returns per-slot availability for a lab on a date.
// @Summary Get slot availability
// @Description Retrieve the availability of every time slot for a lab on a given date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param lab_id query string true "Lab ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse "Slot availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	labID := r.URL.Query().Get(constant.RequestQueryLabID)
	date := r.URL.Query().Get(constant.RequestQueryDate)

	res, err := handler.service.GetAvailability(ctx, labID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
