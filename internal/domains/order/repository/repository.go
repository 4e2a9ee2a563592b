package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/infras/otel"
	"bistro/infras/postgres"
	cartRepo "bistro/internal/domains/cart/repository"
	"bistro/internal/domains/order/model"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/logger"
	gRepo "bistro/shared/repository"
)

type Order interface {
	Place(ctx context.Context, order model.Order, items []model.OrderItem, cartID string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	GetItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	HasItem(ctx context.Context, orderID, menuItemID string) (bool, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TotalRevenueCents(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	items gRepo.Repository[model.OrderItem]
	carts cartRepo.Cart
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, carts cartRepo.Cart, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		carts:      carts,
		db:         db,
		otel:       otel,
	}
}

// Place commits the order, its item snapshots, and the cart removal in one
// transaction.
func (repo *repositoryImpl) Place(ctx context.Context, order model.Order, items []model.OrderItem, cartID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.Place")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.InsertTx(ctx, tx, order); err != nil {
		return err
	}

	if err = repo.items.InsertBulkTx(ctx, tx, items); err != nil {
		return err
	}

	if err = repo.carts.ClearTx(ctx, tx, cartID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const totalRevenueQuery = "SELECT COALESCE(SUM(total_amount_cents), 0) FROM orders WHERE status = $1"

// TotalRevenueCents sums the totals of delivered orders.
func (repo *repositoryImpl) TotalRevenueCents(ctx context.Context) (res int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.TotalRevenueCents")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.db.Read.GetContext(ctx, &res, totalRevenueQuery, model.StatusDelivered); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get total revenue (%s): %w", model.EntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) GetItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    orderID,
				Table:    model.ItemTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: "ASC"}

	return repo.items.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) HasItem(ctx context.Context, orderID, menuItemID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    orderID,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemMenuItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    menuItemID,
				Table:    model.ItemTableName,
			},
		},
	}

	return repo.items.Exist(ctx, filter)
}
