package model

import "bistro/shared/model"

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldStatus              = "status"
	FieldTotalAmountCents    = "total_amount_cents"
	FieldPaymentStatus       = "payment_status"
	FieldPaymentMethod       = "payment_method"
	FieldDeliveryAddress     = "delivery_address"
	FieldSpecialInstructions = "special_instructions"

	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	PaymentMethodCreditCard = "credit_card"
	PaymentMethodCash       = "cash"
	PaymentMethodOnline     = "online"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order_item"

	FieldItemID         = "id"
	FieldItemOrderID    = "order_id"
	FieldItemMenuItemID = "menu_item_id"
	FieldItemQuantity   = "quantity"
	FieldItemPriceCents = "price_cents"
	FieldItemName       = "item_name"
)

type Order struct {
	ID                  string  `db:"id"`
	UserID              string  `db:"user_id"`
	Status              string  `db:"status"`
	TotalAmountCents    int64   `db:"total_amount_cents"`
	PaymentStatus       string  `db:"payment_status"`
	PaymentMethod       string  `db:"payment_method"`
	DeliveryAddress     *string `db:"delivery_address"`
	SpecialInstructions *string `db:"special_instructions"`
	model.Metadata
}

// OrderItem snapshots the menu item name and unit price at checkout so later
// menu edits do not rewrite order history.
type OrderItem struct {
	ID         string `db:"id"`
	OrderID    string `db:"order_id"`
	MenuItemID string `db:"menu_item_id"`
	ItemName   string `db:"item_name"`
	Quantity   int    `db:"quantity"`
	PriceCents int64  `db:"price_cents"`
	model.Metadata
}
