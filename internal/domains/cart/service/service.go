package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/internal/domains/cart/model"
	"bistro/internal/domains/cart/model/dto"
	"bistro/internal/domains/cart/repository"
	menuItemModel "bistro/internal/domains/menuitem/model"
	menuItemRepo "bistro/internal/domains/menuitem/repository"
	"bistro/shared"
	"bistro/shared/constant"
	"bistro/shared/failure"

	"github.com/rs/zerolog/log"
)

type Cart interface {
	Get(ctx context.Context, userID string) (dto.CartResponse, error)
	AddItem(ctx context.Context, req dto.AddCartItemRequest, userID string) (dto.CartResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateCartItemRequest, itemID, userID string) (dto.CartResponse, error)
	RemoveItem(ctx context.Context, itemID, userID string) (dto.CartResponse, error)
	Clear(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo         repository.Cart
	menuItemRepo menuItemRepo.MenuItem
	cfg          *config.Config
	otel         otel.Otel
}

func New(repo repository.Cart, menuItemRepo menuItemRepo.MenuItem, cfg *config.Config, otel otel.Otel) Cart {
	return &serviceImpl{
		repo:         repo,
		menuItemRepo: menuItemRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

// Get returns the user's cart. A user with no cart gets an empty one without
// creating a row.
func (s *serviceImpl) Get(ctx context.Context, userID string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.ID == constant.Empty {
		res.Items = []dto.CartItemResponse{}

		return res, nil
	}

	items, err := s.repo.GetItems(ctx, cart.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")

		return res, fmt.Errorf("failed to get cart items: %w", err)
	}

	res.FromModels(cart, items)

	return res, nil
}

func (s *serviceImpl) AddItem(ctx context.Context, req dto.AddCartItemRequest, userID string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	menuItem, err := s.menuItemRepo.Get(ctx, shared.FilterByID(req.MenuItemID, menuItemModel.FieldID, menuItemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return res, fmt.Errorf("failed to get menu item: %w", err)
	}

	if menuItem.ID == constant.Empty {
		return res, failure.NotFound("menu item not found")
	}

	if !menuItem.Available {
		return res, failure.BadRequestFromString("menu item is not available")
	}

	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	cartIsNew := cart.ID == constant.Empty
	if cartIsNew {
		cart = dto.NewCartModel(userID)
	}

	item := req.ToItemModel(cart.ID, menuItem.PriceCents, userID)

	if err = s.repo.AddItem(ctx, cart, cartIsNew, item); err != nil {
		log.Error().Err(err).Msg("failed to add cart item")

		return res, fmt.Errorf("failed to add cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateCartItemRequest, itemID, userID string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.ownedCart(ctx, userID)
	if err != nil {
		return res, err
	}

	item, err := s.repo.GetItem(ctx, cart.ID, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart item")

		return res, fmt.Errorf("failed to get cart item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("cart item not found")
	}

	if err = s.repo.UpdateItemQuantity(ctx, cart.ID, itemID, req.Quantity, userID); err != nil {
		log.Error().Err(err).Msg("failed to update cart item")

		return res, fmt.Errorf("failed to update cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *serviceImpl) RemoveItem(ctx context.Context, itemID, userID string) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.ownedCart(ctx, userID)
	if err != nil {
		return res, err
	}

	item, err := s.repo.GetItem(ctx, cart.ID, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart item")

		return res, fmt.Errorf("failed to get cart item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("cart item not found")
	}

	if err = s.repo.RemoveItem(ctx, cart.ID, itemID, userID); err != nil {
		log.Error().Err(err).Msg("failed to remove cart item")

		return res, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *serviceImpl) Clear(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.ownedCart(ctx, userID)
	if err != nil {
		return err
	}

	if err = s.repo.Clear(ctx, cart.ID); err != nil {
		log.Error().Err(err).Msg("failed to clear cart")

		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (s *serviceImpl) ownedCart(ctx context.Context, userID string) (model.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return cart, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.ID == constant.Empty {
		return cart, failure.NotFound("cart not found")
	}

	return cart, nil
}
