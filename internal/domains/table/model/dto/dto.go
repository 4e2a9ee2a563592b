package dto

import (
	"bistro/internal/domains/table/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	TableNumber string  `json:"table_number"          validate:"required,max=20"`
	Capacity    int     `json:"capacity"              validate:"required,min=1,max=50"`
	Status      string  `json:"status"                validate:"omitempty,oneof=available occupied maintenance"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

func (c *CreateTableRequest) ToModel(user string) model.Table {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Table{
		ID:          uuid.NewString(),
		TableNumber: c.TableNumber,
		Capacity:    c.Capacity,
		Status:      status,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTableRequest struct {
	TableNumber *string `db:"table_number" json:"table_number,omitempty" validate:"omitempty,max=20"`
	Capacity    *int    `db:"capacity"     json:"capacity,omitempty"     validate:"omitempty,min=1,max=50"`
	Status      *string `db:"status"       json:"status,omitempty"       validate:"omitempty,oneof=available occupied maintenance"`
	Description *string `db:"description"  json:"description,omitempty"  validate:"omitempty,max=255"`
}

type TableResponse struct {
	ID          string  `json:"id"`
	TableNumber string  `json:"table_number"`
	Capacity    int     `json:"capacity"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(model model.Table) {
	r.ID = model.ID
	r.TableNumber = model.TableNumber
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}

type CheckAvailabilityRequest struct {
	Date   string `json:"booking_date"     validate:"required,datetime=2006-01-02"`
	Time   string `json:"booking_time"     validate:"required,datetime=15:04"`
	Guests int    `json:"number_of_guests" validate:"required,min=1"`
}

type AvailabilityResponse struct {
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Guests          int             `json:"guests"`
	AvailableTables []TableResponse `json:"available_tables"`
}

func (r *AvailabilityResponse) FromModels(req CheckAvailabilityRequest, models []model.Table) {
	r.Date = req.Date
	r.Time = req.Time
	r.Guests = req.Guests

	r.AvailableTables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.AvailableTables[i].FromModel(mod)
	}
}
