package model

import (
	"time"

	"agendalab/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRole       = "role"
	FieldDepartment = "department"
	FieldPhone      = "phone"
	FieldStatus     = "status"
	FieldLastLogin  = "last_login"
)

type User struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	Role       string     `db:"role"`
	Department *string    `db:"department"`
	Phone      *string    `db:"phone"`
	Status     string     `db:"status"`
	LastLogin  *time.Time `db:"last_login"`
	model.Metadata
}
