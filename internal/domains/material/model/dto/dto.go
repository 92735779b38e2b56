package dto

import (
	"mime/multipart"

	"agendalab/internal/domains/material/model"
	movementModel "agendalab/internal/domains/movement/model"
	"agendalab/shared"
	gDto "agendalab/shared/dto"
	gModel "agendalab/shared/model"
	"agendalab/shared/timezone"

	"github.com/google/uuid"
)

type CreateMaterialRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Category string `json:"category" validate:"omitempty,max=50"`
	Stock    int    `json:"stock"    validate:"omitempty,min=0"`
	Minimum  int    `json:"minimum"  validate:"omitempty,min=0"`
	Location string `json:"location"  validate:"omitempty,max=100"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

func (c *CreateMaterialRequest) ToModel(user string) model.Material {
	return model.Material{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Category: c.Category,
		Stock:    c.Stock,
		Minimum:  c.Minimum,
		Location: c.Location,
		Status:   model.StatusForStock(c.Stock, c.Minimum),
		PhotoURL: c.PhotoURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// Stock and Status are deliberately absent: the stock level only moves
// through movements, which rederive the status atomically.
type UpdateMaterialRequest struct {
	Name     string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Category string `db:"category"  json:"category"  validate:"omitempty,max=50"`
	Minimum  *int   `db:"minimum"   json:"minimum"   validate:"omitempty,min=0"`
	Location string `db:"location"  json:"location"  validate:"omitempty,max=100"`
	PhotoURL string `db:"photo_url" json:"photo_url" validate:"omitempty,url"`
}

type MoveMaterialRequest struct {
	Type     string `json:"type"     validate:"required,oneof=entrada saida"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Notes    string `json:"notes"    validate:"omitempty"`
}

func (m *MoveMaterialRequest) ToMovement(materialID, userID string) movementModel.Movement {
	return movementModel.Movement{
		ID:         uuid.NewString(),
		MaterialID: materialID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Notes:      m.Notes,
		UserID:     userID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type MaterialResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Minimum  int    `json:"minimum"`
	Location string `json:"location"`
	Status   string `json:"status"`
	PhotoURL string `json:"photo_url"`
	gDto.Metadata
}

func (r *MaterialResponse) FromModel(model model.Material) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Stock = model.Stock
	r.Minimum = model.Minimum
	r.Location = model.Location
	r.Status = model.Status
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetMaterialsResponse struct {
	Materials []MaterialResponse `json:"materials"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMaterialsResponse) FromModels(models []model.Material, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Materials = make([]MaterialResponse, len(models))
	for i, mod := range models {
		r.Materials[i].FromModel(mod)
	}
}
