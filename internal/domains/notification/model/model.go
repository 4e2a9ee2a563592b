package model

import (
	"time"

	"bistro/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldType   = "type"
	FieldTitle  = "title"
	FieldBody   = "body"
	FieldRead   = "read"
	FieldReadAt = "read_at"

	TypeBookingCreated   = "booking.created"
	TypeBookingUpdated   = "booking.updated"
	TypeBookingCancelled = "booking.cancelled"
	TypeOrderPlaced      = "order.placed"
	TypeOrderUpdated     = "order.updated"
	TypeReviewCreated    = "review.created"
	TypeReviewModerated  = "review.moderated"
)

type Notification struct {
	ID     string     `db:"id"`
	UserID string     `db:"user_id"`
	Type   string     `db:"type"`
	Title  string     `db:"title"`
	Body   string     `db:"body"`
	Read   bool       `db:"read"`
	ReadAt *time.Time `db:"read_at"`
	model.Metadata
}
