package model

import (
	"agendalab/shared/constant"
	"agendalab/shared/model"
)

const (
	TableName  = "materiais"
	EntityName = "material"

	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldStock    = "stock"
	FieldMinimum  = "minimum"
	FieldLocation = "location"
	FieldStatus   = "status"
	FieldPhotoURL = "photo_url"
)

type Material struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Category string `db:"category"`
	Stock    int    `db:"stock"`
	Minimum  int    `db:"minimum"`
	Location string `db:"location"`
	Status   string `db:"status"`
	PhotoURL string `db:"photo_url"`
	model.Metadata
}

// StatusForStock derives the stock status from the current quantity
// against the minimum threshold.
func StatusForStock(stock, minimum int) string {
	switch {
	case stock <= 0:
		return constant.MaterialStatusDepleted
	case stock <= minimum:
		return constant.MaterialStatusLowStock
	default:
		return constant.MaterialStatusAvailable
	}
}
