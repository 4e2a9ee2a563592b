package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	"bistro/internal/domains/cart/model"
	"bistro/internal/domains/cart/model/dto"
	cartMocks "bistro/internal/domains/cart/repository/mocks"
	"bistro/internal/domains/cart/service"
	menuItemModel "bistro/internal/domains/menuitem/model"
	menuItemMocks "bistro/internal/domains/menuitem/repository/mocks"
)

func TestCartService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cartMocks.NewMockCart(ctrl)
	mockMenuItemRepo := menuItemMocks.NewMockMenuItem(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMenuItemRepo, cfg, mockOtel)

	t.Run("user without cart gets an empty cart", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{}, nil)

		result, err := svc.Get(context.Background(), "user-id-1")

		assert.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Zero(t, result.TotalAmount)
	})

	t.Run("cart with items", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{ID: "cart-id-1", UserID: "user-id-1", TotalAmountCents: 2598}, nil)

		mockRepo.EXPECT().
			GetItems(gomock.Any(), "cart-id-1").
			Return([]model.CartItem{
				{ID: "item-1", CartID: "cart-id-1", MenuItemID: "menu-1", Quantity: 2, PriceCents: 1299, ItemName: "Margherita"},
			}, nil)

		result, err := svc.Get(context.Background(), "user-id-1")

		assert.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.InDelta(t, 25.98, result.TotalAmount, 0.001)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{}, errors.New("db error"))

		_, err := svc.Get(context.Background(), "user-id-1")

		assert.Error(t, err)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cartMocks.NewMockCart(ctrl)
	mockMenuItemRepo := menuItemMocks.NewMockMenuItem(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMenuItemRepo, cfg, mockOtel)

	availableItem := menuItemModel.MenuItem{
		ID:         "menu-1",
		CategoryID: "cat-1",
		Name:       "Margherita",
		PriceCents: 1299,
		Available:  true,
	}

	existingCart := model.Cart{ID: "cart-id-1", UserID: "user-id-1"}

	tests := []struct {
		name      string
		req       dto.AddCartItemRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "add to existing cart",
			req:  dto.AddCartItemRequest{MenuItemID: "menu-1", Quantity: 2},
			setupMock: func() {
				mockMenuItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)

				mockRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(existingCart, nil)

				mockRepo.EXPECT().
					AddItem(gomock.Any(), existingCart, false, gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(model.Cart{ID: "cart-id-1", UserID: "user-id-1", TotalAmountCents: 2598}, nil)

				mockRepo.EXPECT().
					GetItems(gomock.Any(), "cart-id-1").
					Return([]model.CartItem{
						{ID: "item-1", CartID: "cart-id-1", MenuItemID: "menu-1", Quantity: 2, PriceCents: 1299},
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "first item creates the cart",
			req:  dto.AddCartItemRequest{MenuItemID: "menu-1", Quantity: 1},
			setupMock: func() {
				mockMenuItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableItem, nil)

				mockRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(model.Cart{}, nil)

				mockRepo.EXPECT().
					AddItem(gomock.Any(), gomock.Any(), true, gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					GetByUser(gomock.Any(), "user-id-1").
					Return(model.Cart{ID: "cart-id-2", UserID: "user-id-1", TotalAmountCents: 1299}, nil)

				mockRepo.EXPECT().
					GetItems(gomock.Any(), "cart-id-2").
					Return([]model.CartItem{
						{ID: "item-1", CartID: "cart-id-2", MenuItemID: "menu-1", Quantity: 1, PriceCents: 1299},
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "menu item not found",
			req:  dto.AddCartItemRequest{MenuItemID: "missing", Quantity: 1},
			setupMock: func() {
				mockMenuItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(menuItemModel.MenuItem{}, nil)
			},
			wantErr: true,
		},
		{
			name: "menu item unavailable",
			req:  dto.AddCartItemRequest{MenuItemID: "menu-1", Quantity: 1},
			setupMock: func() {
				unavailable := availableItem
				unavailable.Available = false

				mockMenuItemRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unavailable, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.AddItem(context.Background(), tt.req, "user-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.Items)
			}
		})
	}
}

func TestCartService_UpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cartMocks.NewMockCart(ctrl)
	mockMenuItemRepo := menuItemMocks.NewMockMenuItem(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMenuItemRepo, cfg, mockOtel)

	existingCart := model.Cart{ID: "cart-id-1", UserID: "user-id-1"}
	existingItem := model.CartItem{ID: "item-1", CartID: "cart-id-1", MenuItemID: "menu-1", Quantity: 1, PriceCents: 1299}

	t.Run("successful quantity update", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(existingCart, nil)

		mockRepo.EXPECT().
			GetItem(gomock.Any(), "cart-id-1", "item-1").
			Return(existingItem, nil)

		mockRepo.EXPECT().
			UpdateItemQuantity(gomock.Any(), "cart-id-1", "item-1", 3, "user-id-1").
			Return(nil)

		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{ID: "cart-id-1", UserID: "user-id-1", TotalAmountCents: 3897}, nil)

		mockRepo.EXPECT().
			GetItems(gomock.Any(), "cart-id-1").
			Return([]model.CartItem{{ID: "item-1", Quantity: 3, PriceCents: 1299}}, nil)

		result, err := svc.UpdateItem(context.Background(), dto.UpdateCartItemRequest{Quantity: 3}, "item-1", "user-id-1")

		assert.NoError(t, err)
		assert.Len(t, result.Items, 1)
	})

	t.Run("cart not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{}, nil)

		_, err := svc.UpdateItem(context.Background(), dto.UpdateCartItemRequest{Quantity: 3}, "item-1", "user-id-1")

		assert.Error(t, err)
	})

	t.Run("cart item not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(existingCart, nil)

		mockRepo.EXPECT().
			GetItem(gomock.Any(), "cart-id-1", "missing").
			Return(model.CartItem{}, nil)

		_, err := svc.UpdateItem(context.Background(), dto.UpdateCartItemRequest{Quantity: 3}, "missing", "user-id-1")

		assert.Error(t, err)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := cartMocks.NewMockCart(ctrl)
	mockMenuItemRepo := menuItemMocks.NewMockMenuItem(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMenuItemRepo, cfg, mockOtel)

	t.Run("successful clear", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{ID: "cart-id-1", UserID: "user-id-1"}, nil)

		mockRepo.EXPECT().
			Clear(gomock.Any(), "cart-id-1").
			Return(nil)

		err := svc.Clear(context.Background(), "user-id-1")

		assert.NoError(t, err)
	})

	t.Run("cart not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUser(gomock.Any(), "user-id-1").
			Return(model.Cart{}, nil)

		err := svc.Clear(context.Background(), "user-id-1")

		assert.Error(t, err)
	})
}
