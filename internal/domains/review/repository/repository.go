package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/internal/domains/review/model"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	gRepo "bistro/shared/repository"
	"bistro/shared/logger"
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AverageRating(ctx context.Context, menuItemID string) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const averageRatingQuery = "SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE status = $1"

// AverageRating averages approved review ratings, across the whole menu when
// menuItemID is empty or for a single item otherwise.
func (repo *repositoryImpl) AverageRating(ctx context.Context, menuItemID string) (res float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".AverageRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := averageRatingQuery
	args := []any{model.StatusApproved}

	if menuItemID != constant.Empty {
		query += " AND menu_item_id = $2"
		args = append(args, menuItemID)
	}

	if err = repo.db.Read.GetContext(ctx, &res, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get average rating (%s): %w", model.EntityName, err)
	}

	return res, nil
}
