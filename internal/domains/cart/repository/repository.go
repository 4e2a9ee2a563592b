package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/internal/domains/cart/model"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/logger"
	gRepo "bistro/shared/repository"
	"bistro/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// recomputeTotalQuery keeps carts.total_amount_cents equal to the sum of its
// items. Every item mutation runs it inside the same transaction.
const recomputeTotalQuery = `
	UPDATE carts
	SET total_amount_cents = (
		SELECT COALESCE(SUM(quantity * price_cents), 0)
		FROM cart_items
		WHERE cart_id = :cart_id
	),
	modified_at = :modified_at,
	modified_by = :modified_by
	WHERE id = :cart_id`

type Cart interface {
	GetByUser(ctx context.Context, userID string) (model.Cart, error)
	GetItems(ctx context.Context, cartID string) ([]model.CartItem, error)
	GetItem(ctx context.Context, cartID, itemID string) (model.CartItem, error)
	AddItem(ctx context.Context, cart model.Cart, cartIsNew bool, item model.CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int, user string) error
	RemoveItem(ctx context.Context, cartID, itemID, user string) error
	Clear(ctx context.Context, cartID string) error
	ClearTx(ctx context.Context, sqltx *sqlx.Tx, cartID string) error
}

type repositoryImpl struct {
	carts gRepo.Repository[model.Cart]
	items gRepo.Repository[model.CartItem]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cart {
	return &repositoryImpl{
		carts: gRepo.NewRepository[model.Cart](model.EntityName, model.TableName, model.FieldID, db, otel),
		items: gRepo.NewRepository[model.CartItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		db:    db,
		otel:  otel,
	}
}

func (repo *repositoryImpl) GetByUser(ctx context.Context, userID string) (model.Cart, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return repo.carts.Get(ctx, filter)
}

func (repo *repositoryImpl) GetItems(ctx context.Context, cartID string) ([]model.CartItem, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Operator: gDto.FilterOperatorEq,
				Value:    cartID,
				Table:    model.ItemTableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: "ASC"}

	return repo.items.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) GetItem(ctx context.Context, cartID, itemID string) (model.CartItem, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Operator: gDto.FilterOperatorEq,
				Value:    cartID,
				Table:    model.ItemTableName,
			},
		},
	}

	return repo.items.Get(ctx, filter)
}

func (repo *repositoryImpl) AddItem(ctx context.Context, cart model.Cart, cartIsNew bool, item model.CartItem) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cart.AddItem")
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

	if cartIsNew {
		if err = repo.carts.InsertTx(ctx, tx, cart); err != nil {
			return err
		}
	}

	var existing struct {
		ID       string `db:"id"`
		Quantity int    `db:"quantity"`
	}

	query := "SELECT id, quantity FROM cart_items WHERE cart_id = $1 AND menu_item_id = $2"

	err = tx.GetContext(ctx, &existing, query, cart.ID, item.MenuItemID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err = repo.items.InsertTx(ctx, tx, item); err != nil {
			return err
		}
	case err != nil:
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to look up cart item: %w", err)
	default:
		updatedFields := map[string]any{
			model.FieldItemQuantity:   existing.Quantity + item.Quantity,
			model.FieldItemPriceCents: item.PriceCents,
			constant.FieldModifiedAt:  timezone.Now(),
			constant.FieldModifiedBy:  item.ModifiedBy,
		}

		itemFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldItemID,
					Operator: gDto.FilterOperatorEq,
					Value:    existing.ID,
					Table:    model.ItemTableName,
				},
			},
		}

		if err = repo.items.UpdateTx(ctx, tx, updatedFields, itemFilter); err != nil {
			return err
		}
	}

	if err = repo.recomputeTotal(ctx, tx, cart.ID, item.ModifiedBy); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cart.UpdateItemQuantity")
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

	updatedFields := map[string]any{
		model.FieldItemQuantity:  quantity,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	itemFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Operator: gDto.FilterOperatorEq,
				Value:    cartID,
				Table:    model.ItemTableName,
			},
		},
	}

	if err = repo.items.UpdateTx(ctx, tx, updatedFields, itemFilter); err != nil {
		return err
	}

	if err = repo.recomputeTotal(ctx, tx, cartID, user); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) RemoveItem(ctx context.Context, cartID, itemID, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cart.RemoveItem")
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

	itemFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemID,
				Operator: gDto.FilterOperatorEq,
				Value:    itemID,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Operator: gDto.FilterOperatorEq,
				Value:    cartID,
				Table:    model.ItemTableName,
			},
		},
	}

	if err = repo.items.DeleteTx(ctx, tx, itemFilter); err != nil {
		return err
	}

	if err = repo.recomputeTotal(ctx, tx, cartID, user); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Clear(ctx context.Context, cartID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cart.Clear")
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

	if err = repo.ClearTx(ctx, tx, cartID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ClearTx removes the cart and all of its items inside the caller's
// transaction. Order placement uses it so checkout and cart removal commit
// atomically.
func (repo *repositoryImpl) ClearTx(ctx context.Context, sqltx *sqlx.Tx, cartID string) error {
	itemFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemCartID,
				Operator: gDto.FilterOperatorEq,
				Value:    cartID,
				Table:    model.ItemTableName,
			},
		},
	}

	if err := repo.items.DeleteTx(ctx, sqltx, itemFilter); err != nil {
		return err
	}

	cartFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    cartID,
				Table:    model.TableName,
			},
		},
	}

	return repo.carts.DeleteTx(ctx, sqltx, cartFilter)
}

func (repo *repositoryImpl) recomputeTotal(ctx context.Context, tx *sqlx.Tx, cartID, user string) error {
	args := map[string]any{
		"cart_id":                cartID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if _, err := tx.NamedExecContext(ctx, recomputeTotalQuery, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to recompute cart total: %w", err)
	}

	return nil
}
