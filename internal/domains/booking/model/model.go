package model

import (
	"time"

	"agendalab/shared/model"
)

const (
	TableName  = "agendamentos"
	EntityName = "booking"

	FieldID        = "id"
	FieldLabID     = "lab_id"
	FieldDate      = "data"
	FieldSlot      = "horario"
	FieldProfessor = "professor"
	FieldSubject   = "disciplina"
	FieldGroup     = "turma"
	FieldNotes     = "observacoes"
	FieldStatus    = "status"
	FieldUserID    = "user_id"
)

type Booking struct {
	ID        string    `db:"id"`
	LabID     string    `db:"lab_id"`
	Date      time.Time `db:"data"`
	Slot      string    `db:"horario"`
	Professor string    `db:"professor"`
	Subject   string    `db:"disciplina"`
	Group     string    `db:"turma"`
	Notes     string    `db:"observacoes"`
	Status    string    `db:"status"`
	UserID    string    `db:"user_id"`
	model.Metadata
}
