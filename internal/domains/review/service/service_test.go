package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	notifModel "bistro/internal/domains/notification/model"
	notifDto "bistro/internal/domains/notification/model/dto"
	notifMocks "bistro/internal/domains/notification/service/mocks"
	orderModel "bistro/internal/domains/order/model"
	orderMocks "bistro/internal/domains/order/repository/mocks"
	"bistro/internal/domains/review/model"
	"bistro/internal/domains/review/model/dto"
	reviewMocks "bistro/internal/domains/review/repository/mocks"
	"bistro/internal/domains/review/service"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
)

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockOrderRepo := orderMocks.NewMockOrder(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockOrderRepo, cfg, mockOtel, mockNotifier)

	deliveredOrder := orderModel.Order{
		ID:     "order-id-1",
		UserID: "user-id-1",
		Status: orderModel.StatusDelivered,
	}

	req := dto.CreateReviewRequest{
		OrderID:    "order-id-1",
		MenuItemID: "menu-1",
		Rating:     5,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful review",
			setupMock: func() {
				mockOrderRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deliveredOrder, nil)

				mockOrderRepo.EXPECT().
					HasItem(gomock.Any(), "order-id-1", "menu-1").
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Cond(func(event notifDto.Event) bool {
						return event.Type == notifModel.TypeReviewCreated
					}))
			},
			wantErr: false,
		},
		{
			name: "order not found",
			setupMock: func() {
				mockOrderRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(orderModel.Order{}, nil)
			},
			wantErr: true,
		},
		{
			name: "order not delivered",
			setupMock: func() {
				pendingOrder := deliveredOrder
				pendingOrder.Status = orderModel.StatusPending

				mockOrderRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)
			},
			wantErr: true,
		},
		{
			name: "menu item not in order",
			setupMock: func() {
				mockOrderRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deliveredOrder, nil)

				mockOrderRepo.EXPECT().
					HasItem(gomock.Any(), "order-id-1", "menu-1").
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "duplicate review",
			setupMock: func() {
				mockOrderRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deliveredOrder, nil)

				mockOrderRepo.EXPECT().
					HasItem(gomock.Any(), "order-id-1", "menu-1").
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockOrderRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deliveredOrder, nil)

				mockOrderRepo.EXPECT().
					HasItem(gomock.Any(), "order-id-1", "menu-1").
					Return(true, nil)

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

			result, err := svc.Create(context.Background(), req, "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, result.Status)
				assert.Equal(t, 5, result.Rating)
			}
		})
	}
}

func TestReviewService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockOrderRepo := orderMocks.NewMockOrder(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockOrderRepo, cfg, mockOtel, mockNotifier)

	newRating := 3

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "pending review updated",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{ID: "review-id-1", UserID: "user-id-1", Status: model.StatusPending}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "approved review goes back to moderation",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{ID: "review-id-1", UserID: "user-id-1", Status: model.StatusApproved}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Cond(func(fields map[string]any) bool {
						return fields[model.FieldStatus] == model.StatusPending
					}), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "review not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), dto.UpdateReviewRequest{Rating: &newRating}, "review-id-1", "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_Moderate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockOrderRepo := orderMocks.NewMockOrder(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockOrderRepo, cfg, mockOtel, mockNotifier)

	pendingReview := model.Review{
		ID:       "review-id-1",
		UserID:   "user-id-1",
		Status:   model.StatusPending,
		ItemName: "Margherita",
	}

	t.Run("approve review", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingReview, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any())

		err := svc.Moderate(context.Background(), dto.ModerateReviewRequest{Status: model.StatusApproved}, "review-id-1")

		assert.NoError(t, err)
	})

	t.Run("reject deletes the review", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingReview, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any())

		err := svc.Moderate(context.Background(), dto.ModerateReviewRequest{Status: model.StatusRejected}, "review-id-1")

		assert.NoError(t, err)
	})

	t.Run("status unchanged", func(t *testing.T) {
		approved := pendingReview
		approved.Status = model.StatusApproved

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(approved, nil)

		err := svc.Moderate(context.Background(), dto.ModerateReviewRequest{Status: model.StatusApproved}, "review-id-1")

		assert.Error(t, err)
	})
}

func TestReviewService_GetApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockOrderRepo := orderMocks.NewMockOrder(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockOrderRepo, cfg, mockOtel, mockNotifier)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("approved reviews with average rating", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return([]model.Review{
				{ID: "review-1", Rating: 5, Status: model.StatusApproved},
				{ID: "review-2", Rating: 4, Status: model.StatusApproved},
			}, nil)

		mockRepo.EXPECT().
			AverageRating(gomock.Any(), "menu-1").
			Return(4.5, nil)

		result, err := svc.GetApproved(context.Background(), params, "menu-1")

		assert.NoError(t, err)
		assert.Len(t, result.Reviews, 2)
		assert.InDelta(t, 4.5, result.AverageRating, 0.001)
		assert.Equal(t, 2, result.TotalData)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("db error"))

		_, err := svc.GetApproved(context.Background(), params, "")

		assert.Error(t, err)
	})
}
