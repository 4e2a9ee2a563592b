package model

import "bistro/shared/model"

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
)

type Category struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Image       *string `db:"image"`
	model.Metadata
}
