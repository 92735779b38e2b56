package dto

import (
	"time"

	"agendalab/internal/domains/booking/model"
	"agendalab/shared"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	gModel "agendalab/shared/model"
	"agendalab/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	LabID   string `json:"lab_id"  validate:"required"`
	Date    string `json:"date"    validate:"required,dateiso"`
	Slot    string `json:"slot"    validate:"required"`
	Subject string `json:"subject" validate:"omitempty,max=100"`
	Group   string `json:"group"   validate:"omitempty,max=50"`
	Notes   string `json:"notes"   validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(userID, professor, status string) (model.Booking, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:        uuid.NewString(),
		LabID:     c.LabID,
		Date:      date,
		Slot:      c.Slot,
		Professor: professor,
		Subject:   c.Subject,
		Group:     c.Group,
		Notes:     c.Notes,
		Status:    status,
		UserID:    userID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  professor,
			ModifiedBy: professor,
		},
	}, nil
}

// Status is deliberately absent: Cancel is the only status transition
// exposed to callers.
type UpdateBookingRequest struct {
	Date    string `db:"data"        json:"date"    validate:"omitempty,dateiso"`
	Slot    string `db:"horario"     json:"slot"    validate:"omitempty"`
	Subject string `db:"disciplina"  json:"subject" validate:"omitempty,max=100"`
	Group   string `db:"turma"       json:"group"   validate:"omitempty,max=50"`
	Notes   string `db:"observacoes" json:"notes"   validate:"omitempty"`
}

type CancelBookingRequest struct {
	Status string `db:"status" json:"status"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	LabID     string `json:"lab_id"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Professor string `json:"professor"`
	Subject   string `json:"subject"`
	Group     string `json:"group"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.LabID = model.LabID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Slot = model.Slot
	r.Professor = model.Professor
	r.Subject = model.Subject
	r.Group = model.Group
	r.Notes = model.Notes
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
