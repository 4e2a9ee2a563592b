package model

import (
	"time"

	"bistro/shared/model"
)

const (
	TableName  = "table_bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldTableID        = "table_id"
	FieldBookingDate    = "booking_date"
	FieldBookingTime    = "booking_time"
	FieldGuests         = "guests"
	FieldStatus         = "status"
	FieldSpecialRequest = "special_request"
	FieldTableNumber    = "table_number"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	TableID        string    `db:"table_id"`
	BookingDate    time.Time `db:"booking_date"`
	BookingTime    string    `db:"booking_time"`
	Guests         int       `db:"guests"`
	Status         string    `db:"status"`
	SpecialRequest *string   `db:"special_request"`
	TableNumber    string    `db:"table_number" table:"tables"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN tables ON tables.id = table_bookings.table_id"
}
