package dto

import (
	"agendalab/internal/domains/movement/model"
	"agendalab/shared"
	gDto "agendalab/shared/dto"
)

type MovementResponse struct {
	ID         string `json:"id"`
	MaterialID string `json:"material_id"`
	Type       string `json:"type"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
	UserID     string `json:"user_id"`
	gDto.Metadata
}

func (r *MovementResponse) FromModel(model model.Movement) {
	r.ID = model.ID
	r.MaterialID = model.MaterialID
	r.Type = model.Type
	r.Quantity = model.Quantity
	r.Notes = model.Notes
	r.UserID = model.UserID
	r.Metadata.FromModel(model.Metadata)
}

type GetMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMovementsResponse) FromModels(models []model.Movement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Movements = make([]MovementResponse, len(models))
	for i, mod := range models {
		r.Movements[i].FromModel(mod)
	}
}
