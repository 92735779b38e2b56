package model

const EntityName = "report"

// ProfessorActivity is the aggregation row behind the most-active-professor
// dashboard card.
type ProfessorActivity struct {
	Professor string `db:"professor"`
	Total     int    `db:"total"`
}
