package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bistro/internal/domains/booking/model"
	"bistro/internal/domains/booking/model/dto"
	"bistro/shared/constant"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	specialRequest := "Window table please"
	req := dto.CreateBookingRequest{
		TableID:        "table-1",
		BookingDate:    "2026-09-15",
		BookingTime:    "19:30",
		Guests:         4,
		SpecialRequest: &specialRequest,
	}

	booking := req.ToModel("user-1")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, "table-1", booking.TableID)
	assert.Equal(t, "2026-09-15", booking.BookingDate.Format(constant.DateOnlyFormat))
	assert.Equal(t, "19:30", booking.BookingTime)
	assert.Equal(t, 4, booking.Guests)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, &specialRequest, booking.SpecialRequest)
	assert.Equal(t, "user-1", booking.Metadata.CreatedBy)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		UserID:      "user-1",
		TableID:     "table-1",
		TableNumber: "Table 3",
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		BookingTime: "19:30",
		Guests:      4,
		Status:      model.StatusConfirmed,
	}

	var resp dto.BookingResponse
	resp.FromModel(booking)

	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "Table 3", resp.TableNumber)
	assert.Equal(t, "2026-09-15", resp.BookingDate)
	assert.Equal(t, "19:30", resp.BookingTime)
	assert.Equal(t, model.StatusConfirmed, resp.Status)
	assert.Nil(t, resp.SpecialRequest)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1"},
		{ID: "booking-2"},
	}

	var resp dto.GetBookingsResponse
	resp.FromModels(models, 12, 5)

	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, 12, resp.TotalData)
	assert.Equal(t, 3, resp.TotalPage)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)
}
