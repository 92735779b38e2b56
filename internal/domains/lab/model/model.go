package model

import "agendalab/shared/model"

const (
	TableName  = "laboratorios"
	EntityName = "lab"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldCapacity    = "capacity"
	FieldActive      = "active"
)

type Lab struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Location    string `db:"location"`
	Capacity    int    `db:"capacity"`
	Active      bool   `db:"active"`
	model.Metadata
}
