package dto

import (
	"agendalab/internal/domains/schedule/model"
)

type AvailabilityResponse struct {
	LabID string             `json:"lab_id"`
	Date  string             `json:"date"`
	Slots []model.SlotStatus `json:"slots"`
}

type SlotCatalogResponse struct {
	Slots []string `json:"slots"`
}
