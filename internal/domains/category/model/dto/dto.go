package dto

import (
	"mime/multipart"

	"bistro/internal/domains/category/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/png image/jpg image/gif,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateCategoryRequest) ToModel(user string, imageURL string) model.Category {
	var image *string
	if imageURL != "" {
		image = &imageURL
	}

	return model.Category{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Image:       image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description *string               `db:"description" json:"description" validate:"omitempty,max=500"`
	Image       *multipart.FileHeader `json:"image"     swaggerignore:"true" validate:"omitempty,mimetypes=image/jpeg image/png image/jpg image/gif,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
