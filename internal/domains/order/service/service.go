package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/config"
	"bistro/infras/otel"
	cartRepo "bistro/internal/domains/cart/repository"
	notifModel "bistro/internal/domains/notification/model"
	notifDto "bistro/internal/domains/notification/model/dto"
	notifService "bistro/internal/domains/notification/service"
	"bistro/internal/domains/order/model"
	"bistro/internal/domains/order/model/dto"
	"bistro/internal/domains/order/repository"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	"bistro/shared/money"

	"github.com/rs/zerolog/log"
)

type Order interface {
	Place(ctx context.Context, req dto.PlaceOrderRequest, userID string) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id, userID string) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id string) error
	UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) error
	Cancel(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Order
	cartRepo cartRepo.Cart
	cfg      *config.Config
	otel     otel.Otel
	notifier notifService.Notification
}

func New(repo repository.Order, cartRepo cartRepo.Cart, cfg *config.Config, otel otel.Otel, notifier notifService.Notification) Order {
	return &serviceImpl{
		repo:     repo,
		cartRepo: cartRepo,
		cfg:      cfg,
		otel:     otel,
		notifier: notifier,
	}
}

func (s *serviceImpl) Place(ctx context.Context, req dto.PlaceOrderRequest, userID string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Place")
	defer scope.End()
	defer scope.TraceIfError(err)

	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart.ID == constant.Empty || cart.ID != req.CartID {
		return res, failure.NotFound("cart not found")
	}

	cartItems, err := s.cartRepo.GetItems(ctx, cart.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart items")

		return res, fmt.Errorf("failed to get cart items: %w", err)
	}

	if len(cartItems) == 0 {
		return res, failure.BadRequestFromString("cart is empty")
	}

	order, orderItems := dto.BuildOrderModels(req, cart, cartItems, userID)

	if err = s.repo.Place(ctx, order, orderItems, cart.ID); err != nil {
		log.Error().Err(err).Msg("failed to place order")

		return res, fmt.Errorf("failed to place order: %w", err)
	}

	res.FromModel(order)
	res.WithItems(orderItems)

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: userID,
		Type:   notifModel.TypeOrderPlaced,
		Title:  "Order placed",
		Body:   fmt.Sprintf("Your order of %d items totalling %.2f was received", len(orderItems), money.FromCents(order.TotalAmountCents)),
	})

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Get returns the order with its item snapshots. A non-empty userID enforces
// that the order belongs to that user.
func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return res, err
	}

	items, err := s.repo.GetItems(ctx, order.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModel(order)
	res.WithItems(items)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := s.getOwned(ctx, id, constant.Empty)
	if err != nil {
		return err
	}

	if order.Status == model.StatusCancelled || order.Status == model.StatusDelivered {
		return failure.BadRequestFromString(fmt.Sprintf("%s orders cannot change status", order.Status))
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update order status")

		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: order.UserID,
		Type:   notifModel.TypeOrderUpdated,
		Title:  "Order " + req.Status,
		Body:   fmt.Sprintf("Your order is now %s", req.Status),
	})

	return nil
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := s.getOwned(ctx, id, constant.Empty)
	if err != nil {
		return err
	}

	if order.Status == model.StatusCancelled {
		return failure.BadRequestFromString("cancelled orders cannot change payment status")
	}

	if order.PaymentStatus == req.PaymentStatus {
		return failure.BadRequestFromString(fmt.Sprintf("payment is already %s", req.PaymentStatus))
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: order.UserID,
		Type:   notifModel.TypeOrderUpdated,
		Title:  "Payment " + req.PaymentStatus,
		Body:   fmt.Sprintf("Payment for your order is now %s", req.PaymentStatus),
	})

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if order.Status != model.StatusPending {
		return failure.BadRequestFromString("only pending orders can be cancelled")
	}

	updatedFields := shared.TransformFields(dto.UpdateOrderStatusRequest{Status: model.StatusCancelled}, userID)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel order")

		return fmt.Errorf("failed to cancel order: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: order.UserID,
		Type:   notifModel.TypeOrderUpdated,
		Title:  "Order cancelled",
		Body:   "Your order was cancelled",
	})

	return nil
}

// Delete removes an order and its item snapshots. Only cancelled orders may
// be removed so order history stays intact.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.getOwned(ctx, id, constant.Empty)
	if err != nil {
		return err
	}

	if order.Status != model.StatusCancelled {
		return failure.BadRequestFromString("only cancelled orders can be deleted")
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete order")

		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// getOwned loads an order by id. A non-empty userID enforces ownership:
// someone else's order yields 403, not 404.
func (s *serviceImpl) getOwned(ctx context.Context, id, userID string) (model.Order, error) {
	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return order, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return order, failure.NotFound("order not found")
	}

	if userID != constant.Empty && order.UserID != userID {
		return order, failure.Forbidden("order belongs to another user")
	}

	return order, nil
}
