package router

import (
	"bistro/internal/handlers/admin"
	"bistro/internal/handlers/auth"
	"bistro/internal/handlers/booking"
	"bistro/internal/handlers/cart"
	"bistro/internal/handlers/category"
	"bistro/internal/handlers/menuitem"
	"bistro/internal/handlers/notification"
	"bistro/internal/handlers/order"
	"bistro/internal/handlers/review"
	"bistro/internal/handlers/table"
	"bistro/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Table        table.Handler
	Booking      booking.Handler
	Category     category.Handler
	MenuItem     menuitem.Handler
	Cart         cart.Handler
	Order        order.Handler
	Review       review.Handler
	Notification notification.Handler
	Admin        admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Table.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.MenuItem.Router(routerGroup)
		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
