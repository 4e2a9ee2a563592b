package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/config"
	"bistro/infras/otel"
	notifModel "bistro/internal/domains/notification/model"
	notifDto "bistro/internal/domains/notification/model/dto"
	notifService "bistro/internal/domains/notification/service"
	orderModel "bistro/internal/domains/order/model"
	orderRepo "bistro/internal/domains/order/repository"
	"bistro/internal/domains/review/model"
	"bistro/internal/domains/review/model/dto"
	"bistro/internal/domains/review/repository"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest, userID string) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	GetApproved(ctx context.Context, req gDto.QueryParams, menuItemID string) (dto.GetReviewsResponse, error)
	Get(ctx context.Context, id, userID string) (dto.ReviewResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id, userID string) error
	Moderate(ctx context.Context, req dto.ModerateReviewRequest, id string) error
	Delete(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo      repository.Review
	orderRepo orderRepo.Order
	cfg       *config.Config
	otel      otel.Otel
	notifier  notifService.Notification
}

func New(repo repository.Review, orderRepo orderRepo.Order, cfg *config.Config, otel otel.Otel, notifier notifService.Notification) Review {
	return &serviceImpl{
		repo:      repo,
		orderRepo: orderRepo,
		cfg:       cfg,
		otel:      otel,
		notifier:  notifier,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest, userID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	orderFilter := shared.FilterByID(req.OrderID, orderModel.FieldID, orderModel.TableName)
	orderFilter.Operator = gDto.FilterGroupOperatorAnd
	orderFilter.Filters = append(orderFilter.Filters, gDto.Filter{
		Field:    orderModel.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    orderModel.TableName,
	})

	order, err := s.orderRepo.Get(ctx, orderFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound("order not found")
	}

	if order.Status != orderModel.StatusDelivered {
		return res, failure.BadRequestFromString("only delivered orders can be reviewed")
	}

	ordered, err := s.orderRepo.HasItem(ctx, req.OrderID, req.MenuItemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check order items")

		return res, fmt.Errorf("failed to check order items: %w", err)
	}

	if !ordered {
		return res, failure.BadRequestFromString("menu item is not part of this order")
	}

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.TableName},
			gDto.Filter{Field: model.FieldOrderID, Operator: gDto.FilterOperatorEq, Value: req.OrderID, Table: model.TableName},
			gDto.Filter{Field: model.FieldMenuItemID, Operator: gDto.FilterOperatorEq, Value: req.MenuItemID, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	if duplicate {
		return res, failure.BadRequestFromString("menu item already reviewed for this order")
	}

	review := req.ToModel(userID)
	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: userID,
		Type:   notifModel.TypeReviewCreated,
		Title:  "Review received",
		Body:   fmt.Sprintf("Your %d-star review is pending moderation", review.Rating),
	})

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit, 0)

	return res, nil
}

// GetApproved lists approved reviews only, the public view of the review
// catalogue, optionally restricted to one menu item and annotated with the
// average approved rating of that scope.
func (s *serviceImpl) GetApproved(ctx context.Context, req gDto.QueryParams, menuItemID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusApproved, Table: model.TableName},
		},
	}

	if menuItemID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldMenuItemID,
			Operator: gDto.FilterOperatorEq,
			Value:    menuItemID,
			Table:    model.TableName,
		})
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	average, err := s.repo.AverageRating(ctx, menuItemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get average rating")

		return res, fmt.Errorf("failed to get average rating: %w", err)
	}

	res.FromModels(models, total, req.Limit, average)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, userID)

	// Edits send an approved review back through moderation.
	if review.Status == model.StatusApproved {
		updatedFields[model.FieldStatus] = model.StatusPending
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

func (s *serviceImpl) Moderate(ctx context.Context, req dto.ModerateReviewRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Moderate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	review, err := s.getOwned(ctx, id, constant.Empty)
	if err != nil {
		return err
	}

	if review.Status == req.Status {
		return failure.BadRequestFromString(fmt.Sprintf("review is already %s", req.Status))
	}

	// Rejection removes the review rather than keeping it around in a
	// rejected state.
	if req.Status == model.StatusRejected {
		if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to reject review")

			return fmt.Errorf("failed to reject review: %w", err)
		}
	} else {
		updatedFields := shared.TransformFields(req, user)
		if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to moderate review")

			return fmt.Errorf("failed to moderate review: %w", err)
		}
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: review.UserID,
		Type:   notifModel.TypeReviewModerated,
		Title:  "Review " + req.Status,
		Body:   fmt.Sprintf("Your review of %s was %s", review.ItemName, req.Status),
	})

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

// getOwned loads a review by id. A non-empty userID enforces ownership:
// someone else's review yields 403, not 404.
func (s *serviceImpl) getOwned(ctx context.Context, id, userID string) (model.Review, error) {
	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return review, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return review, failure.NotFound("review not found")
	}

	if userID != constant.Empty && review.UserID != userID {
		return review, failure.Forbidden("review belongs to another user")
	}

	return review, nil
}
