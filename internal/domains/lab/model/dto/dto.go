package dto

import (
	"agendalab/internal/domains/lab/model"
	"agendalab/shared"
	gDto "agendalab/shared/dto"
	gModel "agendalab/shared/model"
	"agendalab/shared/timezone"

	"github.com/google/uuid"
)

type CreateLabRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Location    string `json:"location"    validate:"omitempty,max=100"`
	Capacity    int    `json:"capacity"    validate:"omitempty,min=0"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateLabRequest) ToModel(user string) model.Lab {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Lab{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Capacity:    c.Capacity,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateLabRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=100"`
	Capacity    *int   `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type LabResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *LabResponse) FromModel(model model.Lab) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetLabsResponse struct {
	Labs      []LabResponse `json:"labs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetLabsResponse) FromModels(models []model.Lab, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Labs = make([]LabResponse, len(models))
	for i, mod := range models {
		r.Labs[i].FromModel(mod)
	}
}
