package dto

import (
	"bistro/internal/domains/review/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	OrderID    string  `json:"order_id"          validate:"required,uuid"`
	MenuItemID string  `json:"menu_item_id"      validate:"required,uuid"`
	Rating     int     `json:"rating"            validate:"required,min=1,max=5"`
	Comment    *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(userID string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		OrderID:    c.OrderID,
		MenuItemID: c.MenuItemID,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `db:"rating"  json:"rating,omitempty"  validate:"omitempty,min=1,max=5"`
	Comment *string `db:"comment" json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type ModerateReviewRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=approved rejected"`
}

type ReviewResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	OrderID    string  `json:"order_id"`
	MenuItemID string  `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment,omitempty"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.OrderID = model.OrderID
	r.MenuItemID = model.MenuItemID
	r.ItemName = model.ItemName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	TotalPage     int              `json:"total_page"`
	TotalData     int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int, averageRating float64) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.AverageRating = averageRating

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
