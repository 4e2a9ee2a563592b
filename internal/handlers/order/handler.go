package order

import (
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/order/model"
	"bistro/internal/domains/order/model/dto"
	"bistro/internal/domains/order/service"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/validator"
	"bistro/transport/http/middleware"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Order
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Order, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)
		routerGroup.Post("/", handler.PlaceOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrderByID)
		routerGroup.Patch("/{id}/status", handler.UpdateOrderStatus)
		routerGroup.Patch("/{id}/payment-status", handler.UpdatePaymentStatus)
		routerGroup.Post("/{id}/cancel", handler.CancelOrder)
		routerGroup.Delete("/{id}", handler.DeleteOrder)
	})
}

// PlaceOrder converts the authenticated user's cart into an order.
// @Summary Place an order
// @Description Place an order from the current cart contents. The cart is emptied on success.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Place Order Request"
// @Success 201 {object} dto.OrderResponse "Order placed successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [post]
// @Security BearerAuth
func (handler *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceOrder")
	defer scope.End()

	req := dto.PlaceOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := handler.service.Place(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to place order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order placed successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders retrieves orders based on query parameters.
// Administrators see every order, other users only their own.
// @Summary Get orders
// @Description Retrieve orders with optional filtering and pagination.
// @Tags Order
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetOrdersResponse "List of orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if userID := shared.OwnerScope(ctx); userID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves an order with its items by ID.
// @Summary Get an order by ID
// @Description Retrieve an order and its item snapshots by its unique identifier.
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse "Order details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	order, err := handler.service.Get(ctx, id, shared.OwnerScope(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order retrieved successfully")

	response.WithJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus transitions an order's status.
// @Summary Update an order's status
// @Description Transition an order to a new status.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Update Order Status Request"
// @Success 200 {object} response.Message "Order status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOrderStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Order status updated successfully")
}

// UpdatePaymentStatus transitions an order's payment status.
// @Summary Update an order's payment status
// @Description Mark an order's payment as pending, paid, or failed.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdatePaymentStatusRequest true "Update Payment Status Request"
// @Success 200 {object} response.Message "Payment status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/payment-status [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePaymentStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Payment status updated successfully")
}

// CancelOrder cancels a pending order by its ID.
// @Summary Cancel an order
// @Description Cancel an order that is still pending.
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message "Order cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id, shared.OwnerScope(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel order")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Order cancelled successfully")
}

// DeleteOrder removes a cancelled order and its item snapshots.
// @Summary Delete an order
// @Description Delete an order that has been cancelled.
// @Tags Order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Message "Order deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete order")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Order deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Order deleted successfully")
}
