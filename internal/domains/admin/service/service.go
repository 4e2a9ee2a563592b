package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/infras/otel"
	"bistro/internal/domains/admin/model/dto"
	bookingModel "bistro/internal/domains/booking/model"
	bookingRepo "bistro/internal/domains/booking/repository"
	categoryRepo "bistro/internal/domains/category/repository"
	menuItemRepo "bistro/internal/domains/menuitem/repository"
	orderModel "bistro/internal/domains/order/model"
	orderRepo "bistro/internal/domains/order/repository"
	reviewModel "bistro/internal/domains/review/model"
	reviewRepo "bistro/internal/domains/review/repository"
	tableRepo "bistro/internal/domains/table/repository"
	userRepo "bistro/internal/domains/user/repository"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/money"

	"github.com/rs/zerolog/log"
)

type Admin interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	userRepo     userRepo.User
	tableRepo    tableRepo.Table
	categoryRepo categoryRepo.Category
	menuItemRepo menuItemRepo.MenuItem
	bookingRepo  bookingRepo.Booking
	orderRepo    orderRepo.Order
	reviewRepo   reviewRepo.Review
	otel         otel.Otel
}

func New(
	userRepo userRepo.User,
	tableRepo tableRepo.Table,
	categoryRepo categoryRepo.Category,
	menuItemRepo menuItemRepo.MenuItem,
	bookingRepo bookingRepo.Booking,
	orderRepo orderRepo.Order,
	reviewRepo reviewRepo.Review,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		userRepo:     userRepo,
		tableRepo:    tableRepo,
		categoryRepo: categoryRepo,
		menuItemRepo: menuItemRepo,
		bookingRepo:  bookingRepo,
		orderRepo:    orderRepo,
		reviewRepo:   reviewRepo,
		otel:         otel,
	}
}

// Dashboard aggregates headline counts across every domain for the admin
// overview screen.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts := []struct {
		name  string
		dest  *int
		count func(context.Context, gDto.FilterGroup) (int, error)
		where gDto.FilterGroup
	}{
		{"users", &res.TotalUsers, s.userRepo.Count, gDto.FilterGroup{}},
		{"tables", &res.TotalTables, s.tableRepo.Count, gDto.FilterGroup{}},
		{"categories", &res.TotalCategories, s.categoryRepo.Count, gDto.FilterGroup{}},
		{"menu items", &res.TotalMenuItems, s.menuItemRepo.Count, gDto.FilterGroup{}},
		{"bookings", &res.TotalBookings, s.bookingRepo.Count, gDto.FilterGroup{}},
		{"pending bookings", &res.PendingBookings, s.bookingRepo.Count, statusFilter(bookingModel.TableName, bookingModel.StatusPending)},
		{"orders", &res.TotalOrders, s.orderRepo.Count, gDto.FilterGroup{}},
		{"pending orders", &res.PendingOrders, s.orderRepo.Count, statusFilter(orderModel.TableName, orderModel.StatusPending)},
		{"pending reviews", &res.PendingReviews, s.reviewRepo.Count, statusFilter(reviewModel.TableName, reviewModel.StatusPending)},
	}

	for _, c := range counts {
		total, err := c.count(ctx, c.where)
		if err != nil {
			log.Error().Err(err).Msg("failed to count " + c.name)

			return res, fmt.Errorf("failed to count %s: %w", c.name, err)
		}

		*c.dest = total
	}

	revenue, err := s.orderRepo.TotalRevenueCents(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get total revenue")

		return res, fmt.Errorf("failed to get total revenue: %w", err)
	}

	res.TotalRevenue = money.FromCents(revenue)

	return res, nil
}

func statusFilter(table, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    "status",
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    table,
			},
		},
	}
}
