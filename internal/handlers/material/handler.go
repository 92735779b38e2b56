package material

import (
	"net/http"

	"agendalab/infras/otel"
	"agendalab/internal/domains/material/model"
	"agendalab/internal/domains/material/model/dto"
	"agendalab/internal/domains/material/service"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/validator"
	"agendalab/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Material
	otel    otel.Otel
}

func New(service service.Material, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/materials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaterial)
		routerGroup.Get("/", handler.GetMaterials)
		routerGroup.Post("/photo", handler.UploadPhoto)
		routerGroup.Get("/{id}", handler.GetMaterialByID)
		routerGroup.Patch("/{id}", handler.UpdateMaterial)
		routerGroup.Delete("/{id}", handler.DeleteMaterial)
		routerGroup.Post("/{id}/movements", handler.MoveMaterial)
	})
}

// CreateMaterial handles the creation of a new material.
// @Summary Create a new material
// @Description Create a new consumable material with the provided details.
// @Tags Material
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Create Material Request"
// @Success 201 {object} response.Message "Material created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials [post]
// @Security BearerAuth
func (handler *Handler) CreateMaterial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaterial")
	defer scope.End()

	req := dto.CreateMaterialRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create material")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Material created successfully")

	response.WithMessage(writer, http.StatusCreated, "Material created successfully")
}

// GetMaterials retrieves all materials based on query parameters.
// @Summary Get all materials
// @Description Retrieve all materials with optional filtering and pagination.
// @Tags Material
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.MaterialResponse] "List of materials"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials [get]
// @Security BearerAuth
func (handler *Handler) GetMaterials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaterials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	materials, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get materials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Materials retrieved successfully")

	response.WithJSON(w, http.StatusOK, materials)
}

// GetMaterialByID retrieves a material by its ID.
// @Summary Get a material by ID
// @Description Retrieve a material by its unique identifier.
// @Tags Material
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} response.Data[dto.MaterialResponse] "Material details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMaterialByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaterialByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	material, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get material by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Material retrieved successfully")

	response.WithJSON(w, http.StatusOK, material)
}

// UpdateMaterial updates an existing material by its ID.
// @Summary Update a material by ID
// @Description Update the details of an existing material. Stock changes must go through movements.
// @Tags Material
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param request body dto.UpdateMaterialRequest true "Update Material Request"
// @Success 200 {object} response.Message "Material updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaterial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMaterialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update material")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Material updated successfully")

	response.WithMessage(w, http.StatusOK, "Material updated successfully")
}

// DeleteMaterial deletes a material by its ID.
// @Summary Delete a material by ID
// @Description Delete a material using its unique identifier.
// @Tags Material
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} response.Message "Material deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMaterial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete material")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Material deleted successfully")

	response.WithMessage(w, http.StatusOK, "Material deleted successfully")
}

// MoveMaterial records a stock movement for a material.
// @Summary Move material stock
// @Description Record an inbound or outbound stock movement and return the updated material.
// @Tags Material
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param request body dto.MoveMaterialRequest true "Move Material Request"
// @Success 200 {object} response.Data[dto.MaterialResponse] "Updated material"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials/{id}/movements [post]
// @Security BearerAuth
func (handler *Handler) MoveMaterial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveMaterial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MoveMaterialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	material, err := handler.service.Move(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move material stock")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Material stock moved successfully by user " + user)

	response.WithJSON(w, http.StatusOK, material)
}

// UploadPhoto handles material photo upload to S3.
// @Summary Upload a material photo to S3
// @Description Upload a photo file to S3 and return the URL.
// @Tags Material
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo file to upload"
// @Success 200 {object} dto.UploadPhotoResponse "Photo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/materials/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Photo:     fileHeader,
		PhotoFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadPhoto(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
