package model

import "agendalab/shared/model"

const (
	TableName  = "movimentacoes_materiais"
	EntityName = "movement"

	FieldID         = "id"
	FieldMaterialID = "material_id"
	FieldType       = "type"
	FieldQuantity   = "quantity"
	FieldNotes      = "notes"
	FieldUserID     = "user_id"
)

type Movement struct {
	ID         string `db:"id"`
	MaterialID string `db:"material_id"`
	Type       string `db:"type"`
	Quantity   int    `db:"quantity"`
	Notes      string `db:"notes"`
	UserID     string `db:"user_id"`
	model.Metadata
}
