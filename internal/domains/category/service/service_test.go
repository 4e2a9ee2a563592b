package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	s3Mocks "bistro/infras/s3/mocks"
	"bistro/internal/domains/category/model"
	"bistro/internal/domains/category/model/dto"
	categoryMocks "bistro/internal/domains/category/repository/mocks"
	"bistro/internal/domains/category/service"
	menuItemMocks "bistro/internal/domains/menuitem/repository/mocks"
	cacheMocks "bistro/shared/cache/mocks"
	gDto "bistro/shared/dto"
)

// Cache writes and invalidations run on background goroutines, so their
// expectations use AnyTimes and the controller finishes via t.Cleanup.
func newService(t *testing.T) (service.Category, *categoryMocks.MockCategory, *menuItemMocks.MockMenuItem, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := categoryMocks.NewMockCategory(ctrl)
	mockMenuItemRepo := menuItemMocks.NewMockMenuItem(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "bistro-assets"

	svc := service.New(mockRepo, mockMenuItemRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockMenuItemRepo, mockCache, mockS3
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("creates a category without image", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Cond(func(c model.Category) bool {
				return c.Name == "Desserts" && c.Image == nil
			})).
			Return(nil)

		err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Desserts"})

		assert.NoError(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Desserts"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "category name already in use")
	})

	t.Run("exist check error", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))

		err := svc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Desserts"})

		assert.Error(t, err)
	})
}

func TestCategoryService_Get(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, _, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Get(context.Background(), "cat-1")

		assert.NoError(t, err)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Category{ID: "cat-1", Name: "Desserts"}, nil)

		res, err := svc.Get(context.Background(), "cat-1")

		assert.NoError(t, err)
		assert.Equal(t, "cat-1", res.ID)
		assert.Equal(t, "Desserts", res.Name)
	})

	t.Run("category not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Category{}, nil)

		_, err := svc.Get(context.Background(), "cat-missing")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "category not found")
	})
}

func TestCategoryService_Update(t *testing.T) {
	description := "Sweet endings"

	t.Run("updates fields", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Category{ID: "cat-1", Name: "Desserts"}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateCategoryRequest{Description: &description}, "cat-1")

		assert.NoError(t, err)
	})

	t.Run("category not found", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Category{}, nil)

		err := svc.Update(context.Background(), dto.UpdateCategoryRequest{Description: &description}, "cat-missing")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "category not found")
	})
}

func TestCategoryService_Delete(t *testing.T) {
	t.Run("deletes an empty category", func(t *testing.T) {
		svc, mockRepo, mockMenuItemRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockMenuItemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "cat-1")

		assert.NoError(t, err)
	})

	t.Run("category with menu items", func(t *testing.T) {
		svc, mockRepo, mockMenuItemRepo, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockMenuItemRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Delete(context.Background(), "cat-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot delete category with menu items")
	})

	t.Run("category not found", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "cat-missing")

		assert.Error(t, err)
	})
}

func TestCategoryService_GetAll(t *testing.T) {
	req := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss counts and lists", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newService(t)

		// One miss for the listing, one for the count.
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Category{{ID: "cat-1"}, {ID: "cat-2"}}, nil)

		res, err := svc.GetAll(context.Background(), req, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Categories, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))

		_, err := svc.GetAll(context.Background(), req, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
