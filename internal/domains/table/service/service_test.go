package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	bookingModel "bistro/internal/domains/booking/model"
	bookingMocks "bistro/internal/domains/booking/repository/mocks"
	"bistro/internal/domains/table/model"
	"bistro/internal/domains/table/model/dto"
	tableMocks "bistro/internal/domains/table/repository/mocks"
	"bistro/internal/domains/table/service"
	cacheMocks "bistro/shared/cache/mocks"
)

func newService(t *testing.T) (service.Table, *tableMocks.MockTable, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	// Cache writes and invalidations run on background goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockBookingRepo, mockCache
}

func TestTableService_Create(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Create(context.Background(), dto.CreateTableRequest{
			TableNumber: "Table 9",
			Capacity:    4,
		})

		assert.NoError(t, err)
	})

	t.Run("duplicate table number", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Create(context.Background(), dto.CreateTableRequest{
			TableNumber: "Table 1",
			Capacity:    4,
		})

		assert.Error(t, err)
	})
}

func TestTableService_Get(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Get(context.Background(), "table-id-1")

		assert.NoError(t, err)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Table{ID: "table-id-1", TableNumber: "Table 1", Capacity: 4, Status: model.StatusAvailable}, nil)

		result, err := svc.Get(context.Background(), "table-id-1")

		assert.NoError(t, err)
		assert.Equal(t, "Table 1", result.TableNumber)
	})

	t.Run("table not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Table{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestTableService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, mockBookingRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "table-id-1")

		assert.NoError(t, err)
	})

	t.Run("table with active bookings", func(t *testing.T) {
		svc, mockRepo, mockBookingRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Delete(context.Background(), "table-id-1")

		assert.Error(t, err)
	})

	t.Run("table not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestTableService_CheckAvailability(t *testing.T) {
	req := dto.CheckAvailabilityRequest{
		Date:   "2026-09-12",
		Time:   "19:00",
		Guests: 4,
	}

	t.Run("booked tables are filtered out", func(t *testing.T) {
		svc, mockRepo, mockBookingRepo, _ := newService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Table{
				{ID: "table-id-1", TableNumber: "Table 2", Capacity: 4, Status: model.StatusAvailable},
				{ID: "table-id-2", TableNumber: "Table 3", Capacity: 6, Status: model.StatusAvailable},
			}, nil)

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{ID: "booking-1", TableID: "table-id-1", Status: bookingModel.StatusConfirmed},
			}, nil)

		result, err := svc.CheckAvailability(context.Background(), req)

		assert.NoError(t, err)
		assert.Len(t, result.AvailableTables, 1)
		assert.Equal(t, "Table 3", result.AvailableTables[0].TableNumber)
		assert.Equal(t, req.Date, result.Date)
	})

	t.Run("no bookings leaves all candidates", func(t *testing.T) {
		svc, mockRepo, mockBookingRepo, _ := newService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Table{
				{ID: "table-id-1", TableNumber: "Table 2", Capacity: 4, Status: model.StatusAvailable},
			}, nil)

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		result, err := svc.CheckAvailability(context.Background(), req)

		assert.NoError(t, err)
		assert.Len(t, result.AvailableTables, 1)
	})

	t.Run("candidate lookup error", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.CheckAvailability(context.Background(), req)

		assert.Error(t, err)
	})
}
