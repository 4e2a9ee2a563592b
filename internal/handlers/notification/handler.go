package notification

import (
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/notification/service"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/transport/http/middleware"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Notification
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Notification, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth)
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Patch("/read-all", handler.MarkAllRead)
		routerGroup.Patch("/{id}/read", handler.MarkRead)
	})
}

// GetNotifications lists the authenticated user's notifications.
// @Summary Get notifications
// @Description Retrieve the authenticated user's notifications with pagination.
// @Tags Notification
// @Produce json
// @Success 200 {object} dto.GetNotificationsResponse "List of notifications"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	notifications, err := handler.service.GetAll(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkRead marks a single notification as read.
// @Summary Mark a notification as read
// @Description Mark one of the authenticated user's notifications as read.
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.MarkRead(ctx, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification marked as read by user " + userID)

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}

// MarkAllRead marks every unread notification as read.
// @Summary Mark all notifications as read
// @Description Mark all of the authenticated user's unread notifications as read.
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Message "Notifications marked as read"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/read-all [patch]
// @Security BearerAuth
func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllRead")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.MarkAllRead(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notifications as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications marked as read by user " + userID)

	response.WithMessage(w, http.StatusOK, "Notifications marked as read")
}
