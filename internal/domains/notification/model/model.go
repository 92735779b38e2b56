package model

import "agendalab/shared/model"

const (
	TableName  = "notificacoes"
	EntityName = "notification"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldMessage   = "message"
	FieldType      = "type"
	FieldRead      = "read"
	FieldRelatedID = "related_id"
)

type Notification struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Message   string `db:"message"`
	Type      string `db:"type"`
	Read      bool   `db:"read"`
	RelatedID string `db:"related_id"`
	model.Metadata
}
