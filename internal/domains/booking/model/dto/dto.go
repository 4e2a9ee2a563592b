package dto

import (
	"time"

	"bistro/internal/domains/booking/model"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TableID        string  `json:"table_id"                  validate:"required,uuid"`
	BookingDate    string  `json:"booking_date"              validate:"required,datetime=2006-01-02"`
	BookingTime    string  `json:"booking_time"              validate:"required,datetime=15:04"`
	Guests         int     `json:"guests"                    validate:"required,min=1"`
	SpecialRequest *string `json:"special_request,omitempty" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(userID string) model.Booking {
	date, _ := time.ParseInLocation(constant.DateOnlyFormat, c.BookingDate, timezone.GetLocation())

	return model.Booking{
		ID:             uuid.NewString(),
		UserID:         userID,
		TableID:        c.TableID,
		BookingDate:    date,
		BookingTime:    c.BookingTime,
		Guests:         c.Guests,
		Status:         model.StatusPending,
		SpecialRequest: c.SpecialRequest,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateBookingRequest struct {
	BookingDate    *string `db:"booking_date"    json:"booking_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	BookingTime    *string `db:"booking_time"    json:"booking_time,omitempty"    validate:"omitempty,datetime=15:04"`
	Guests         *int    `db:"guests"          json:"guests,omitempty"          validate:"omitempty,min=1"`
	SpecialRequest *string `db:"special_request" json:"special_request,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	TableID        string  `json:"table_id"`
	TableNumber    string  `json:"table_number"`
	BookingDate    string  `json:"booking_date"`
	BookingTime    string  `json:"booking_time"`
	Guests         int     `json:"guests"`
	Status         string  `json:"status"`
	SpecialRequest *string `json:"special_request,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.TableID = model.TableID
	r.TableNumber = model.TableNumber
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.BookingTime = model.BookingTime
	r.Guests = model.Guests
	r.Status = model.Status
	r.SpecialRequest = model.SpecialRequest
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
