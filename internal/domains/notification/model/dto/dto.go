package dto

import (
	"time"

	"bistro/internal/domains/notification/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

// Event is the payload published to the notification topic. The key is the
// recipient's user ID so events for one user stay ordered.
type Event struct {
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *Event) ToModel() model.Notification {
	return model.Notification{
		ID:     uuid.NewString(),
		UserID: e.UserID,
		Type:   e.Type,
		Title:  e.Title,
		Body:   e.Body,
		Read:   false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  e.UserID,
			ModifiedBy: e.UserID,
		},
	}
}

type NotificationResponse struct {
	ID     string     `json:"id"`
	Type   string     `json:"type"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	Read   bool       `json:"read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.Type = model.Type
	r.Title = model.Title
	r.Body = model.Body
	r.Read = model.Read
	r.ReadAt = model.ReadAt
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalUnread   int                    `json:"total_unread"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, totalUnread, limit int) {
	r.TotalData = totalData
	r.TotalUnread = totalUnread
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
