package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	cartModel "bistro/internal/domains/cart/model"
	cartMocks "bistro/internal/domains/cart/repository/mocks"
	notifMocks "bistro/internal/domains/notification/service/mocks"
	"bistro/internal/domains/order/model"
	"bistro/internal/domains/order/model/dto"
	orderMocks "bistro/internal/domains/order/repository/mocks"
	"bistro/internal/domains/order/service"
)

func TestOrderService_Place(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCartRepo, cfg, mockOtel, mockNotifier)

	filledCart := cartModel.Cart{ID: "cart-id-1", UserID: "user-id-1", TotalAmountCents: 2598}
	cartItems := []cartModel.CartItem{
		{ID: "item-1", CartID: "cart-id-1", MenuItemID: "menu-1", Quantity: 2, PriceCents: 1299, ItemName: "Margherita"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful order",
			setupMock: func() {
				mockCartRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(filledCart, nil)

				mockCartRepo.EXPECT().
					GetItems(gomock.Any(), "cart-id-1").
					Return(cartItems, nil)

				mockRepo.EXPECT().
					Place(gomock.Any(), gomock.Any(), gomock.Any(), "cart-id-1").
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "no cart",
			setupMock: func() {
				mockCartRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(cartModel.Cart{}, nil)
			},
			wantErr: true,
		},
		{
			name: "cart id mismatch",
			setupMock: func() {
				stale := filledCart
				stale.ID = "cart-id-2"

				mockCartRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(stale, nil)
			},
			wantErr: true,
		},
		{
			name: "empty cart",
			setupMock: func() {
				mockCartRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(filledCart, nil)

				mockCartRepo.EXPECT().
					GetItems(gomock.Any(), "cart-id-1").
					Return([]cartModel.CartItem{}, nil)
			},
			wantErr: true,
		},
		{
			name: "place error",
			setupMock: func() {
				mockCartRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(filledCart, nil)

				mockCartRepo.EXPECT().
					GetItems(gomock.Any(), "cart-id-1").
					Return(cartItems, nil)

				mockRepo.EXPECT().
					Place(gomock.Any(), gomock.Any(), gomock.Any(), "cart-id-1").
					Return(errors.New("tx error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := dto.PlaceOrderRequest{CartID: "cart-id-1", PaymentMethod: model.PaymentMethodCash}

			result, err := svc.Place(context.Background(), req, "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, result.Status)
				assert.Equal(t, model.PaymentStatusPending, result.PaymentStatus)
				assert.Equal(t, model.PaymentMethodCash, result.PaymentMethod)
				assert.Len(t, result.Items, 1)
				assert.InDelta(t, 25.98, result.TotalAmount, 0.001)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCartRepo, cfg, mockOtel, mockNotifier)

	pendingOrder := model.Order{
		ID:               "order-id-1",
		UserID:           "user-id-1",
		Status:           model.StatusPending,
		TotalAmountCents: 2598,
	}

	tests := []struct {
		name      string
		req       dto.UpdateOrderStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "move to processing",
			req:  dto.UpdateOrderStatusRequest{Status: model.StatusProcessing},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "delivered orders are terminal",
			req:  dto.UpdateOrderStatusRequest{Status: model.StatusProcessing},
			setupMock: func() {
				delivered := pendingOrder
				delivered.Status = model.StatusDelivered

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(delivered, nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled orders are terminal",
			req:  dto.UpdateOrderStatusRequest{Status: model.StatusProcessing},
			setupMock: func() {
				cancelled := pendingOrder
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "order not found",
			req:  dto.UpdateOrderStatusRequest{Status: model.StatusProcessing},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(context.Background(), tt.req, "order-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCartRepo, cfg, mockOtel, mockNotifier)

	pendingOrder := model.Order{
		ID:     "order-id-1",
		UserID: "user-id-1",
		Status: model.StatusPending,
	}

	t.Run("successful cancel", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingOrder, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockNotifier.EXPECT().
			Notify(gomock.Any(), gomock.Any())

		err := svc.Cancel(context.Background(), "order-id-1", "user-id-1")

		assert.NoError(t, err)
	})

	t.Run("only pending orders can be cancelled", func(t *testing.T) {
		processing := pendingOrder
		processing.Status = model.StatusProcessing

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(processing, nil)

		err := svc.Cancel(context.Background(), "order-id-1", "user-id-1")

		assert.Error(t, err)
	})
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCartRepo, cfg, mockOtel, mockNotifier)

	unpaidOrder := model.Order{
		ID:            "order-id-1",
		UserID:        "user-id-1",
		Status:        model.StatusProcessing,
		PaymentStatus: model.PaymentStatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdatePaymentStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "mark as paid",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unpaidOrder, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Cond(func(fields map[string]any) bool {
						return fields[model.FieldPaymentStatus] == model.PaymentStatusPaid
					}), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Notify(gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "payment already in requested state",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPending},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unpaidOrder, nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled orders cannot change payment status",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func() {
				cancelled := unpaidOrder
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "order not found",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdatePaymentStatus(context.Background(), tt.req, "order-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockNotifier := notifMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCartRepo, cfg, mockOtel, mockNotifier)

	cancelledOrder := model.Order{
		ID:     "order-id-1",
		UserID: "user-id-1",
		Status: model.StatusCancelled,
	}

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelledOrder, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "order-id-1")

		assert.NoError(t, err)
	})

	t.Run("only cancelled orders can be deleted", func(t *testing.T) {
		delivered := cancelledOrder
		delivered.Status = model.StatusDelivered

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(delivered, nil)

		err := svc.Delete(context.Background(), "order-id-1")

		assert.Error(t, err)
	})

	t.Run("order not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Order{}, nil)

		err := svc.Delete(context.Background(), "order-id-1")

		assert.Error(t, err)
	})
}
