package model

import "bistro/shared/model"

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID           = "id"
	FieldCategoryID   = "category_id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPriceCents   = "price_cents"
	FieldImage        = "image"
	FieldAvailable    = "available"
	FieldCategoryName = "category_name"
)

type MenuItem struct {
	ID           string  `db:"id"`
	CategoryID   string  `db:"category_id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	PriceCents   int64   `db:"price_cents"`
	Image        *string `db:"image"`
	Available    bool    `db:"available"`
	CategoryName string  `db:"category_name" table:"categories" column:"name"`
	model.Metadata
}

func (MenuItem) GetJoinQuery() string {
	return "JOIN categories ON categories.id = menu_items.category_id"
}
