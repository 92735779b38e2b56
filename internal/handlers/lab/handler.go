package lab

import (
	"net/http"

	"agendalab/infras/otel"
	"agendalab/internal/domains/lab/model"
	"agendalab/internal/domains/lab/model/dto"
	"agendalab/internal/domains/lab/service"
	"agendalab/shared"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/validator"
	"agendalab/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lab
	otel    otel.Otel
}

func New(service service.Lab, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/labs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLab)
		routerGroup.Get("/", handler.GetLabs)
		routerGroup.Get("/{id}", handler.GetLabByID)
		routerGroup.Patch("/{id}", handler.UpdateLab)
		routerGroup.Delete("/{id}", handler.DeleteLab)
	})
}

// CreateLab handles the creation of a new laboratory.
// @Summary Create a new lab
// @Description Create a new laboratory with the provided details.
// @Tags Lab
// @Accept json
// @Produce json
// @Param request body dto.CreateLabRequest true "Create Lab Request"
// @Success 201 {object} response.Message "Lab created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/labs [post]
// @Security BearerAuth
func (handler *Handler) CreateLab(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLab")
	defer scope.End()

	req := dto.CreateLabRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create lab")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Lab created successfully")

	response.WithMessage(writer, http.StatusCreated, "Lab created successfully")
}

// GetLabs retrieves all laboratories based on query parameters.
// @Summary Get all labs
// @Description Retrieve all laboratories with optional filtering and pagination.
// @Tags Lab
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.LabResponse] "List of labs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/labs [get]
// @Security BearerAuth
func (handler *Handler) GetLabs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLabs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    location,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	labs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get labs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Labs retrieved successfully")

	response.WithJSON(w, http.StatusOK, labs)
}

// GetLabByID retrieves a laboratory by its ID.
// @Summary Get a lab by ID
// @Description Retrieve a laboratory by its unique identifier.
// @Tags Lab
// @Accept json
// @Produce json
// @Param id path string true "Lab ID"
// @Success 200 {object} response.Data[dto.LabResponse] "Lab details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/labs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetLabByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLabByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	lab, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lab by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lab retrieved successfully")

	response.WithJSON(w, http.StatusOK, lab)
}

// UpdateLab updates an existing laboratory by its ID.
// @Summary Update a lab by ID
// @Description Update the details of an existing laboratory.
// @Tags Lab
// @Accept json
// @Produce json
// @Param id path string true "Lab ID"
// @Param request body dto.UpdateLabRequest true "Update Lab Request"
// @Success 200 {object} response.Message "Lab updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/labs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateLab(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLab")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateLabRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update lab")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lab updated successfully")

	response.WithMessage(w, http.StatusOK, "Lab updated successfully")
}

// DeleteLab deletes a laboratory by its ID.
// @Summary Delete a lab by ID
// @Description Delete a laboratory using its unique identifier.
// @Tags Lab
// @Accept json
// @Produce json
// @Param id path string true "Lab ID"
// @Success 200 {object} response.Message "Lab deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/labs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteLab(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLab")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete lab")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lab deleted successfully")

	response.WithMessage(w, http.StatusOK, "Lab deleted successfully")
}
