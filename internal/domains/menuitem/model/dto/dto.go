package dto

import (
	"mime/multipart"

	"bistro/internal/domains/menuitem/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/money"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	CategoryID  string                `json:"category_id" validate:"required,uuid"`
	Name        string                `json:"name"        validate:"required,max=255"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	Price       float64               `json:"price"       validate:"required,gt=0"`
	Available   *bool                 `json:"available"   validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/png image/jpg image/gif,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateMenuItemRequest) ToModel(user string, imageURL string) model.MenuItem {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	var image *string
	if imageURL != "" {
		image = &imageURL
	}

	return model.MenuItem{
		ID:          uuid.NewString(),
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		PriceCents:  money.ToCents(c.Price),
		Image:       image,
		Available:   available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	CategoryID  *string               `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Name        *string               `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Description *string               `db:"description" json:"description" validate:"omitempty,max=1000"`
	Price       *float64              `json:"price"     validate:"omitempty,gt=0"`
	Available   *bool                 `db:"available"   json:"available"   validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"     swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/png image/jpg image/gif,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

type MenuItemResponse struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Image        *string `json:"image,omitempty"`
	Available    bool    `json:"available"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.CategoryID = model.CategoryID
	r.CategoryName = model.CategoryName
	r.Name = model.Name
	r.Description = model.Description
	r.Price = money.FromCents(model.PriceCents)
	r.Image = model.Image
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MenuItems = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.MenuItems[i].FromModel(mod)
	}
}
