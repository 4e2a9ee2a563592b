package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	kafkaMocks "bistro/infras/kafka/mocks"
	"bistro/infras/otel/mocks"
	"bistro/internal/domains/notification/model"
	"bistro/internal/domains/notification/model/dto"
	notifRepoMocks "bistro/internal/domains/notification/repository/mocks"
	"bistro/internal/domains/notification/service"
	gDto "bistro/shared/dto"
)

// Event publishing runs on a background goroutine, so the kafka expectation
// is registered with AnyTimes and the controller finishes via t.Cleanup.
func newService(t *testing.T) (service.Notification, *notifRepoMocks.MockNotification, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := notifRepoMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Topics.Notifications = "bistro.notifications"

	svc := service.New(mockRepo, cfg, mockOtel, mockKafka)

	return svc, mockRepo, mockKafka
}

func TestNotificationService_Notify(t *testing.T) {
	t.Run("stores the notification and publishes the event", func(t *testing.T) {
		svc, mockRepo, mockKafka := newService(t)

		event := dto.Event{
			UserID: "user-1",
			Type:   "booking_confirmed",
			Title:  "Booking confirmed",
			Body:   "Your table is ready for 2026-09-15 19:30",
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Cond(func(n model.Notification) bool {
				return n.UserID == "user-1" && n.Type == "booking_confirmed" && !n.Read
			})).
			Return(nil)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "bistro.notifications", gomock.Any()).
			Return(nil).
			AnyTimes()

		svc.Notify(context.Background(), event)
	})

	t.Run("storage failure does not panic or block", func(t *testing.T) {
		svc, mockRepo, mockKafka := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "bistro.notifications", gomock.Any()).
			Return(nil).
			AnyTimes()

		svc.Notify(context.Background(), dto.Event{UserID: "user-1", Type: "order_placed"})
	})
}

func TestNotificationService_GetAll(t *testing.T) {
	req := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("returns notifications with unread count", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		models := []model.Notification{
			{ID: "notif-1", UserID: "user-1", Read: false},
			{ID: "notif-2", UserID: "user-1", Read: true},
		}

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), req, gomock.Any()).Return(models, nil)

		res, err := svc.GetAll(context.Background(), req, "user-1")

		assert.NoError(t, err)
		assert.Len(t, res.Notifications, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalUnread)
	})

	t.Run("count error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))

		_, err := svc.GetAll(context.Background(), req, "user-1")

		assert.Error(t, err)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("marks an owned notification read", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Cond(func(fields map[string]any) bool {
				return fields[model.FieldRead] == true
			}), gomock.Any()).
			Return(nil)

		err := svc.MarkRead(context.Background(), "notif-1", "user-1")

		assert.NoError(t, err)
	})

	t.Run("notification not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.MarkRead(context.Background(), "notif-missing", "user-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "notification not found")
	})

	t.Run("update error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		err := svc.MarkRead(context.Background(), "notif-1", "user-1")

		assert.Error(t, err)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	t.Run("marks every unread notification", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Cond(func(fields map[string]any) bool {
				return fields[model.FieldRead] == true
			}), gomock.Any()).
			Return(nil)

		err := svc.MarkAllRead(context.Background(), "user-1")

		assert.NoError(t, err)
	})

	t.Run("update error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		err := svc.MarkAllRead(context.Background(), "user-1")

		assert.Error(t, err)
	})
}
