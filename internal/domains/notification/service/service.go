package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/config"
	"bistro/infras/kafka"
	"bistro/infras/otel"
	"bistro/internal/domains/notification/model"
	"bistro/internal/domains/notification/model/dto"
	"bistro/internal/domains/notification/repository"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	"bistro/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Notify(ctx context.Context, event dto.Event)
	GetAll(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
		kafka: kafka,
	}
}

// Notify stores the in-app notification and publishes the event for external
// consumers. Both paths are best-effort: a delivery failure never fails the
// operation that triggered it.
func (s *serviceImpl) Notify(ctx context.Context, event dto.Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()

	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	if err := s.repo.Insert(ctx, event.ToModel()); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to store notification")
		scope.TraceError(err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: event.UserID, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Notifications, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish notification event")
		}
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

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

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	unreadFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRead,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	unread, err := s.repo.Count(ctx, unreadFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return res, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, unread, req.Limit)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found")
	}

	updatedFields := map[string]any{
		model.FieldRead:          true,
		model.FieldReadAt:        timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRead,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := map[string]any{
		model.FieldRead:          true,
		model.FieldReadAt:        timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notifications read")

		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
