package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	"bistro/internal/domains/booking/model"
	"bistro/internal/domains/booking/model/dto"
	bookingMocks "bistro/internal/domains/booking/repository/mocks"
	"bistro/internal/domains/booking/service"
	notifMocks "bistro/internal/domains/notification/service/mocks"
	tableModel "bistro/internal/domains/table/model"
	tableMocks "bistro/internal/domains/table/repository/mocks"
	"bistro/shared/constant"
	"bistro/shared/failure"
	"bistro/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, cfg, mockOtel, mockNotifier)

	futureDate := timezone.Now().AddDate(0, 0, 7).Format(constant.DateOnlyFormat)

	availableTable := tableModel.Table{
		ID:          "table-id-1",
		TableNumber: "Table 1",
		Capacity:    4,
		Status:      tableModel.StatusAvailable,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: futureDate,
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableTable, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "booking date in the past",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: "2020-01-01",
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name: "unparsable booking date",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: "not-a-date",
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name: "same-day booking is accepted",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: timezone.Now().Format(constant.DateOnlyFormat),
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableTable, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "table not found",
			req: dto.CreateBookingRequest{
				TableID:     "missing-table",
				BookingDate: futureDate,
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{}, nil)
			},
			wantErr: true,
		},
		{
			name: "table under maintenance",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: futureDate,
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {
				unavailableTable := availableTable
				unavailableTable.Status = tableModel.StatusMaintenance

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unavailableTable, nil)
			},
			wantErr: true,
		},
		{
			name: "too many guests for table",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: futureDate,
				BookingTime: "19:00",
				Guests:      10,
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableTable, nil)
			},
			wantErr: true,
		},
		{
			name: "slot already booked",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: futureDate,
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableTable, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				TableID:     "table-id-1",
				BookingDate: futureDate,
				BookingTime: "19:00",
				Guests:      2,
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableTable, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req, "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, result.Status)
				assert.Equal(t, "Table 1", result.TableNumber)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, cfg, mockOtel, mockNotifier)

	pendingBooking := model.Booking{
		ID:          "booking-id-1",
		UserID:      "user-id-1",
		TableID:     "table-id-1",
		TableNumber: "Table 1",
		BookingDate: timezone.Now().AddDate(0, 0, 3),
		BookingTime: "19:00",
		Guests:      2,
		Status:      model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancel",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "already cancelled",
			setupMock: func() {
				cancelled := pendingBooking
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "completed booking",
			setupMock: func() {
				completed := pendingBooking
				completed.Status = model.StatusCompleted

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), "booking-id-1", "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("another user's booking is forbidden", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingBooking, nil)

		err := svc.Cancel(context.Background(), "booking-id-1", "user-id-2")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, cfg, mockOtel, mockNotifier)

	pendingBooking := model.Booking{
		ID:          "booking-id-1",
		UserID:      "user-id-1",
		TableID:     "table-id-1",
		TableNumber: "Table 1",
		BookingDate: timezone.Now().AddDate(0, 0, 3),
		BookingTime: "19:00",
		Guests:      2,
		Status:      model.StatusPending,
	}

	bookedTable := tableModel.Table{
		ID:          "table-id-1",
		TableNumber: "Table 1",
		Capacity:    4,
		Status:      tableModel.StatusAvailable,
	}

	newTime := "20:00"
	tooManyGuests := 8

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful reschedule",
			req:  dto.UpdateBookingRequest{BookingTime: &newTime},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookedTable, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "confirmed booking cannot be modified",
			req:  dto.UpdateBookingRequest{BookingTime: &newTime},
			setupMock: func() {
				confirmed := pendingBooking
				confirmed.Status = model.StatusConfirmed

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "guests exceed table capacity",
			req:  dto.UpdateBookingRequest{Guests: &tooManyGuests},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookedTable, nil)
			},
			wantErr: true,
		},
		{
			name: "new slot already booked",
			req:  dto.UpdateBookingRequest{BookingTime: &newTime},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookedTable, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "booking-id-1", "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, cfg, mockOtel, mockNotifier)

	pendingBooking := model.Booking{
		ID:          "booking-id-1",
		UserID:      "user-id-1",
		TableID:     "table-id-1",
		TableNumber: "Table 1",
		BookingDate: time.Date(2026, 9, 12, 0, 0, 0, 0, timezone.GetLocation()),
		BookingTime: "19:00",
		Guests:      2,
		Status:      model.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "confirm booking",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "cancelled booking cannot change status",
			req:  dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				cancelled := pendingBooking
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(context.Background(), tt.req, "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
