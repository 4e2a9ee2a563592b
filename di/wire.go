//go:build wireinject
// +build wireinject

package di

import (
	"bistro/config"
	"bistro/infras/jwt"
	"bistro/infras/kafka"
	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/infras/redis"
	"bistro/infras/s3"
	"bistro/permissions"
	"bistro/shared/cache"
	"bistro/transport/http"
	"bistro/transport/http/middleware"
	"bistro/transport/http/router"

	adminService "bistro/internal/domains/admin/service"
	authService "bistro/internal/domains/auth/service"
	bookingRepository "bistro/internal/domains/booking/repository"
	bookingService "bistro/internal/domains/booking/service"
	cartRepository "bistro/internal/domains/cart/repository"
	cartService "bistro/internal/domains/cart/service"
	categoryRepository "bistro/internal/domains/category/repository"
	categoryService "bistro/internal/domains/category/service"
	menuItemRepository "bistro/internal/domains/menuitem/repository"
	menuItemService "bistro/internal/domains/menuitem/service"
	notificationRepository "bistro/internal/domains/notification/repository"
	notificationService "bistro/internal/domains/notification/service"
	orderRepository "bistro/internal/domains/order/repository"
	orderService "bistro/internal/domains/order/service"
	reviewRepository "bistro/internal/domains/review/repository"
	reviewService "bistro/internal/domains/review/service"
	tableRepository "bistro/internal/domains/table/repository"
	tableService "bistro/internal/domains/table/service"
	userRepository "bistro/internal/domains/user/repository"
	userService "bistro/internal/domains/user/service"

	adminHandler "bistro/internal/handlers/admin"
	authHandler "bistro/internal/handlers/auth"
	bookingHandler "bistro/internal/handlers/booking"
	cartHandler "bistro/internal/handlers/cart"
	categoryHandler "bistro/internal/handlers/category"
	menuItemHandler "bistro/internal/handlers/menuitem"
	notificationHandler "bistro/internal/handlers/notification"
	orderHandler "bistro/internal/handlers/order"
	reviewHandler "bistro/internal/handlers/review"
	tableHandler "bistro/internal/handlers/table"
	userHandler "bistro/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var menuItemDomain = wire.NewSet(
	menuItemRepository.New,
	menuItemService.New,
)

var cartDomain = wire.NewSet(
	cartRepository.New,
	cartService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	tableDomain,
	bookingDomain,
	categoryDomain,
	menuItemDomain,
	cartDomain,
	orderDomain,
	reviewDomain,
	notificationDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	tableHandler.New,
	bookingHandler.New,
	categoryHandler.New,
	menuItemHandler.New,
	cartHandler.New,
	orderHandler.New,
	reviewHandler.New,
	notificationHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
