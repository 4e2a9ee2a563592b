package model

import "bistro/shared/model"

const (
	TableName  = "tables"
	EntityName = "table"

	FieldID          = "id"
	FieldTableNumber = "table_number"
	FieldCapacity    = "capacity"
	FieldStatus      = "status"
	FieldDescription = "description"

	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Table struct {
	ID          string  `db:"id"`
	TableNumber string  `db:"table_number"`
	Capacity    int     `db:"capacity"`
	Status      string  `db:"status"`
	Description *string `db:"description"`
	model.Metadata
}
