package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/internal/domains/menuitem/model"
	"bistro/internal/domains/menuitem/model/dto"
)

func TestCreateMenuItemRequest_ToModel(t *testing.T) {
	description := "Classic smashed patty with cheddar"
	available := false

	tests := []struct {
		name     string
		req      dto.CreateMenuItemRequest
		imageURL string
		verify   func(t *testing.T, item model.MenuItem)
	}{
		{
			name: "price converted to cents",
			req: dto.CreateMenuItemRequest{
				CategoryID:  "cat-1",
				Name:        "Cheeseburger",
				Description: &description,
				Price:       12.99,
			},
			verify: func(t *testing.T, item model.MenuItem) {
				assert.Equal(t, int64(1299), item.PriceCents)
				assert.Equal(t, "Cheeseburger", item.Name)
				assert.Equal(t, &description, item.Description)
			},
		},
		{
			name: "available defaults to true",
			req: dto.CreateMenuItemRequest{
				CategoryID: "cat-1",
				Name:       "Fries",
				Price:      3.50,
			},
			verify: func(t *testing.T, item model.MenuItem) {
				assert.True(t, item.Available)
			},
		},
		{
			name: "explicit availability respected",
			req: dto.CreateMenuItemRequest{
				CategoryID: "cat-1",
				Name:       "Seasonal Special",
				Price:      9.00,
				Available:  &available,
			},
			verify: func(t *testing.T, item model.MenuItem) {
				assert.False(t, item.Available)
			},
		},
		{
			name: "empty image URL leaves image nil",
			req: dto.CreateMenuItemRequest{
				CategoryID: "cat-1",
				Name:       "Soda",
				Price:      2.00,
			},
			imageURL: "",
			verify: func(t *testing.T, item model.MenuItem) {
				assert.Nil(t, item.Image)
			},
		},
		{
			name: "image URL set",
			req: dto.CreateMenuItemRequest{
				CategoryID: "cat-1",
				Name:       "Soda",
				Price:      2.00,
			},
			imageURL: "https://cdn.example.com/menu/soda.png",
			verify: func(t *testing.T, item model.MenuItem) {
				assert.NotNil(t, item.Image)
				assert.Equal(t, "https://cdn.example.com/menu/soda.png", *item.Image)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.req.ToModel("admin@example.com", tt.imageURL)

			assert.NotEmpty(t, item.ID)
			assert.Equal(t, "admin@example.com", item.Metadata.CreatedBy)
			tt.verify(t, item)
		})
	}
}

func TestMenuItemResponse_FromModel(t *testing.T) {
	item := model.MenuItem{
		ID:           "item-1",
		CategoryID:   "cat-1",
		CategoryName: "Burgers",
		Name:         "Cheeseburger",
		PriceCents:   1299,
		Available:    true,
	}

	var resp dto.MenuItemResponse
	resp.FromModel(item)

	assert.Equal(t, "item-1", resp.ID)
	assert.Equal(t, "Burgers", resp.CategoryName)
	assert.Equal(t, 12.99, resp.Price)
	assert.True(t, resp.Available)
}

func TestGetMenuItemsResponse_FromModels(t *testing.T) {
	models := []model.MenuItem{
		{ID: "item-1", PriceCents: 500},
		{ID: "item-2", PriceCents: 1050},
	}

	var resp dto.GetMenuItemsResponse
	resp.FromModels(models, 25, 10)

	assert.Len(t, resp.MenuItems, 2)
	assert.Equal(t, 25, resp.TotalData)
	assert.Equal(t, 3, resp.TotalPage)
	assert.Equal(t, 5.0, resp.MenuItems[0].Price)
	assert.Equal(t, 10.50, resp.MenuItems[1].Price)
}
