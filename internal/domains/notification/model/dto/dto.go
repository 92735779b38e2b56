package dto

import (
	"agendalab/internal/domains/notification/model"
	"agendalab/shared"
	gDto "agendalab/shared/dto"
	gModel "agendalab/shared/model"
	"agendalab/shared/timezone"

	"github.com/google/uuid"
)

type NotifyRequest struct {
	Title     string `json:"title"      validate:"required,max=200"`
	Message   string `json:"message"    validate:"required"`
	Type      string `json:"type"       validate:"omitempty,oneof=info success warning error"`
	RelatedID string `json:"related_id" validate:"omitempty"`
}

func (r *NotifyRequest) ToModel(user string) model.Notification {
	notificationType := r.Type
	if notificationType == "" {
		notificationType = "info"
	}

	return model.Notification{
		ID:        uuid.NewString(),
		Title:     r.Title,
		Message:   r.Message,
		Type:      notificationType,
		Read:      false,
		RelatedID: r.RelatedID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// BookingEvent is the payload published to the booking topic whenever a
// professor mutates one of their own bookings.
type BookingEvent struct {
	BookingID string `json:"booking_id"`
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Message   string `json:"message"`
}

type MarkReadRequest struct {
	Read bool `db:"read" json:"read"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	RelatedID string `json:"related_id,omitempty"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.Title = model.Title
	r.Message = model.Message
	r.Type = model.Type
	r.Read = model.Read
	r.RelatedID = model.RelatedID
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
