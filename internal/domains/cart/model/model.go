package model

import "bistro/shared/model"

const (
	TableName  = "carts"
	EntityName = "cart"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldTotalAmountCents = "total_amount_cents"
)

const (
	ItemTableName  = "cart_items"
	ItemEntityName = "cart_item"

	FieldItemID         = "id"
	FieldItemCartID     = "cart_id"
	FieldItemMenuItemID = "menu_item_id"
	FieldItemQuantity   = "quantity"
	FieldItemPriceCents = "price_cents"
	FieldItemName       = "item_name"
)

type Cart struct {
	ID               string `db:"id"`
	UserID           string `db:"user_id"`
	TotalAmountCents int64  `db:"total_amount_cents"`
	model.Metadata
}

type CartItem struct {
	ID         string `db:"id"`
	CartID     string `db:"cart_id"`
	MenuItemID string `db:"menu_item_id"`
	Quantity   int    `db:"quantity"`
	PriceCents int64  `db:"price_cents"`
	ItemName   string `db:"item_name" table:"menu_items" column:"name"`
	model.Metadata
}

func (CartItem) GetJoinQuery() string {
	return "JOIN menu_items ON menu_items.id = cart_items.menu_item_id"
}
