package model

import (
	"bistro/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldOrderID    = "order_id"
	FieldMenuItemID = "menu_item_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldStatus     = "status"
	FieldUserName   = "user_name"
	FieldItemName   = "item_name"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Review records a customer's rating of a menu item they ordered. Reviews
// start pending and only surface publicly once approved. Rejection deletes
// the row, so only pending and approved are ever stored.
type Review struct {
	ID         string  `db:"id"`
	UserID     string  `db:"user_id"`
	OrderID    string  `db:"order_id"`
	MenuItemID string  `db:"menu_item_id"`
	Rating     int     `db:"rating"`
	Comment    *string `db:"comment"`
	Status     string  `db:"status"`
	UserName   string  `db:"user_name" table:"users" column:"full_name"`
	ItemName   string  `db:"item_name" table:"menu_items" column:"name"`
	model.Metadata
}

func (Review) GetJoinQuery() string {
	return "JOIN users ON users.id = reviews.user_id JOIN menu_items ON menu_items.id = reviews.menu_item_id"
}
