package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/internal/domains/booking/model"
	"bistro/internal/domains/booking/model/dto"
	"bistro/internal/domains/booking/repository"
	notifModel "bistro/internal/domains/notification/model"
	notifDto "bistro/internal/domains/notification/model/dto"
	notifService "bistro/internal/domains/notification/service"
	tableModel "bistro/internal/domains/table/model"
	tableRepo "bistro/internal/domains/table/repository"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	"bistro/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id, userID string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id, userID string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Cancel(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	tableRepo tableRepo.Table
	cfg       *config.Config
	otel      otel.Otel
	notifier  notifService.Notification
}

func New(repo repository.Booking, tableRepo tableRepo.Table, cfg *config.Config, otel otel.Otel, notifier notifService.Notification) Booking {
	return &serviceImpl{
		repo:      repo,
		tableRepo: tableRepo,
		cfg:       cfg,
		otel:      otel,
		notifier:  notifier,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingDate, err := time.ParseInLocation(constant.DateOnlyFormat, req.BookingDate, timezone.GetLocation())
	if err != nil {
		return res, failure.UnprocessableEntity("invalid booking date")
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
	if bookingDate.Before(today) {
		return res, failure.UnprocessableEntity("booking date cannot be in the past")
	}

	table, err := s.tableRepo.Get(ctx, shared.FilterByID(req.TableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty {
		return res, failure.NotFound("table not found")
	}

	if table.Status != tableModel.StatusAvailable {
		return res, failure.BadRequestFromString("table is not available for booking")
	}

	if table.Capacity < req.Guests {
		return res, failure.BadRequestFromString("table cannot seat the requested number of guests")
	}

	taken, err := s.slotTaken(ctx, req.TableID, req.BookingDate, req.BookingTime, constant.Empty)
	if err != nil {
		return res, err
	}

	if taken {
		return res, failure.BadRequestFromString("table is already booked for this date and time")
	}

	booking := req.ToModel(userID)
	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.TableNumber = table.TableNumber
	res.FromModel(booking)

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: userID,
		Type:   notifModel.TypeBookingCreated,
		Title:  "Booking received",
		Body:   fmt.Sprintf("Your booking for table %s on %s at %s is pending confirmation", table.TableNumber, req.BookingDate, req.BookingTime),
	})

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Get returns the booking if it exists. A non-empty userID restricts the
// lookup to that user's own bookings.
func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.BadRequestFromString("only pending bookings can be modified")
	}

	date := booking.BookingDate.Format(constant.DateOnlyFormat)
	if req.BookingDate != nil {
		date = *req.BookingDate
	}

	slot := booking.BookingTime
	if req.BookingTime != nil {
		slot = *req.BookingTime
	}

	guests := booking.Guests
	if req.Guests != nil {
		guests = *req.Guests
	}

	table, err := s.tableRepo.Get(ctx, shared.FilterByID(booking.TableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return fmt.Errorf("failed to get table: %w", err)
	}

	if table.Capacity < guests {
		return failure.BadRequestFromString("table cannot seat the requested number of guests")
	}

	if req.BookingDate != nil || req.BookingTime != nil {
		taken, err := s.slotTaken(ctx, booking.TableID, date, slot, booking.ID)
		if err != nil {
			return err
		}

		if taken {
			return failure.BadRequestFromString("table is already booked for this date and time")
		}
	}

	updatedFields := shared.TransformFields(req, userID)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: booking.UserID,
		Type:   notifModel.TypeBookingUpdated,
		Title:  "Booking updated",
		Body:   fmt.Sprintf("Your booking for table %s was updated to %s at %s", booking.TableNumber, date, slot),
	})

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getOwned(ctx, id, constant.Empty)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled || booking.Status == model.StatusCompleted {
		return failure.BadRequestFromString(fmt.Sprintf("%s bookings cannot change status", booking.Status))
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: booking.UserID,
		Type:   notifModel.TypeBookingUpdated,
		Title:  "Booking " + req.Status,
		Body:   fmt.Sprintf("Your booking for table %s on %s at %s is now %s", booking.TableNumber, booking.BookingDate.Format(constant.DateOnlyFormat), booking.BookingTime, req.Status),
	})

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled")
	}

	if booking.Status == model.StatusCompleted {
		return failure.BadRequestFromString("completed bookings cannot be cancelled")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: booking.UserID,
		Type:   notifModel.TypeBookingCancelled,
		Title:  "Booking cancelled",
		Body:   fmt.Sprintf("Your booking for table %s on %s at %s was cancelled", booking.TableNumber, booking.BookingDate.Format(constant.DateOnlyFormat), booking.BookingTime),
	})

	return nil
}

// Delete removes the booking row entirely. Completed bookings are kept for
// history and cannot be deleted.
func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusCompleted {
		return failure.BadRequestFromString("completed bookings cannot be deleted")
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.notifier.Notify(ctx, notifDto.Event{
		UserID: booking.UserID,
		Type:   notifModel.TypeBookingCancelled,
		Title:  "Booking cancelled",
		Body:   fmt.Sprintf("Your booking for table %s on %s at %s was cancelled", booking.TableNumber, booking.BookingDate.Format(constant.DateOnlyFormat), booking.BookingTime),
	})

	return nil
}

// getOwned loads a booking by id. A non-empty userID enforces ownership:
// someone else's booking yields 403, not 404.
func (s *serviceImpl) getOwned(ctx context.Context, id, userID string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	if userID != constant.Empty && booking.UserID != userID {
		return booking, failure.Forbidden("booking belongs to another user")
	}

	return booking, nil
}

func (s *serviceImpl) slotTaken(ctx context.Context, tableID, date, slot, excludeID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableID,
				Operator: gDto.FilterOperatorEq,
				Value:    tableID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingTime,
				Operator: gDto.FilterOperatorEq,
				Value:    slot,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
		},
	}

	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking slot")

		return false, fmt.Errorf("failed to check booking slot: %w", err)
	}

	return taken, nil
}
