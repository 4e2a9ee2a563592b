package dto

import (
	cartModel "bistro/internal/domains/cart/model"
	"bistro/internal/domains/order/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/money"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	CartID              string  `json:"cart_id" validate:"required,uuid"`
	PaymentMethod       string  `json:"payment_method" validate:"required,oneof=credit_card cash online"`
	DeliveryAddress     *string `json:"delivery_address,omitempty" validate:"omitempty,max=255"`
	SpecialInstructions *string `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
}

// BuildOrderModels turns the user's cart into an order with item snapshots.
// Item names are taken from the joined cart rows.
func BuildOrderModels(req PlaceOrderRequest, cart cartModel.Cart, cartItems []cartModel.CartItem, userID string) (model.Order, []model.OrderItem) {
	metadata := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  userID,
		ModifiedBy: userID,
	}

	order := model.Order{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Status:              model.StatusPending,
		TotalAmountCents:    cart.TotalAmountCents,
		PaymentStatus:       model.PaymentStatusPending,
		PaymentMethod:       req.PaymentMethod,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		Metadata:            metadata,
	}

	items := make([]model.OrderItem, len(cartItems))
	for i, cartItem := range cartItems {
		items[i] = model.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			MenuItemID: cartItem.MenuItemID,
			ItemName:   cartItem.ItemName,
			Quantity:   cartItem.Quantity,
			PriceCents: cartItem.PriceCents,
			Metadata:   metadata,
		}
	}

	return order, items
}

type UpdateOrderStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending processing ready delivered cancelled"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `db:"payment_status" json:"payment_status" validate:"required,oneof=pending paid failed"`
}

type OrderItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
}

func (r *OrderItemResponse) FromModel(model model.OrderItem) {
	r.ID = model.ID
	r.MenuItemID = model.MenuItemID
	r.ItemName = model.ItemName
	r.Quantity = model.Quantity
	r.Price = money.FromCents(model.PriceCents)
	r.Subtotal = money.FromCents(int64(model.Quantity) * model.PriceCents)
}

type OrderResponse struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"user_id"`
	Status              string              `json:"status"`
	TotalAmount         float64             `json:"total_amount"`
	PaymentStatus       string              `json:"payment_status"`
	PaymentMethod       string              `json:"payment_method"`
	DeliveryAddress     *string             `json:"delivery_address,omitempty"`
	SpecialInstructions *string             `json:"special_instructions,omitempty"`
	Items               []OrderItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Status = model.Status
	r.TotalAmount = money.FromCents(model.TotalAmountCents)
	r.PaymentStatus = model.PaymentStatus
	r.PaymentMethod = model.PaymentMethod
	r.DeliveryAddress = model.DeliveryAddress
	r.SpecialInstructions = model.SpecialInstructions
	r.Metadata.FromModel(model.Metadata)
}

func (r *OrderResponse) WithItems(items []model.OrderItem) {
	r.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
