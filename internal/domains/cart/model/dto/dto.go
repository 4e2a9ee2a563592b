package dto

import (
	"bistro/internal/domains/cart/model"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/money"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity"     validate:"required,min=1"`
}

func (a *AddCartItemRequest) ToItemModel(cartID string, priceCents int64, user string) model.CartItem {
	return model.CartItem{
		ID:         uuid.NewString(),
		CartID:     cartID,
		MenuItemID: a.MenuItemID,
		Quantity:   a.Quantity,
		PriceCents: priceCents,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewCartModel(userID string) model.Cart {
	return model.Cart{
		ID:               uuid.NewString(),
		UserID:           userID,
		TotalAmountCents: 0,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CartItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
	gDto.Metadata
}

func (r *CartItemResponse) FromModel(model model.CartItem) {
	r.ID = model.ID
	r.MenuItemID = model.MenuItemID
	r.ItemName = model.ItemName
	r.Quantity = model.Quantity
	r.Price = money.FromCents(model.PriceCents)
	r.Subtotal = money.FromCents(int64(model.Quantity) * model.PriceCents)
	r.Metadata.FromModel(model.Metadata)
}

type CartResponse struct {
	ID          string             `json:"id"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount float64            `json:"total_amount"`
}

func (r *CartResponse) FromModels(cart model.Cart, items []model.CartItem) {
	r.ID = cart.ID
	r.TotalAmount = money.FromCents(cart.TotalAmountCents)

	r.Items = make([]CartItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}
