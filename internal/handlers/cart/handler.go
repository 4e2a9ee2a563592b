package cart

import (
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/cart/model/dto"
	"bistro/internal/domains/cart/service"
	"bistro/shared/constant"
	"bistro/shared/validator"
	"bistro/transport/http/middleware"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Cart
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Cart, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cart", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth)
		routerGroup.Get("/", handler.GetCart)
		routerGroup.Delete("/", handler.ClearCart)
		routerGroup.Post("/items", handler.AddCartItem)
		routerGroup.Patch("/items/{id}", handler.UpdateCartItem)
		routerGroup.Delete("/items/{id}", handler.RemoveCartItem)
	})
}

// GetCart returns the authenticated user's cart.
// @Summary Get the current user's cart
// @Description Retrieve the authenticated user's cart with its items and total.
// @Tags Cart
// @Produce json
// @Success 200 {object} dto.CartResponse "Cart contents"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart [get]
// @Security BearerAuth
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cart, err := handler.service.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart retrieved successfully")

	response.WithJSON(w, http.StatusOK, cart)
}

// AddCartItem adds a menu item to the authenticated user's cart.
// @Summary Add an item to the cart
// @Description Add a menu item to the cart, merging quantities for repeated items.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} dto.CartResponse "Updated cart contents"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items [post]
// @Security BearerAuth
func (handler *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCartItem")
	defer scope.End()

	req := dto.AddCartItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cart, err := handler.service.AddItem(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item added successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, cart)
}

// UpdateCartItem changes the quantity of a cart item.
// @Summary Update a cart item's quantity
// @Description Set the quantity of an item already in the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart Item ID"
// @Param request body dto.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} dto.CartResponse "Updated cart contents"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCartItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCartItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cart, err := handler.service.UpdateItem(ctx, req, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item updated successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, cart)
}

// RemoveCartItem removes an item from the cart.
// @Summary Remove a cart item
// @Description Remove an item from the authenticated user's cart.
// @Tags Cart
// @Produce json
// @Param id path string true "Cart Item ID"
// @Success 200 {object} dto.CartResponse "Updated cart contents"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart/items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveCartItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cart, err := handler.service.RemoveItem(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove cart item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart item removed successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, cart)
}

// ClearCart empties the authenticated user's cart.
// @Summary Clear the cart
// @Description Remove every item from the authenticated user's cart.
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Message "Cart cleared successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cart [delete]
// @Security BearerAuth
func (handler *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearCart")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Clear(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear cart")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cart cleared successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Cart cleared successfully")
}
