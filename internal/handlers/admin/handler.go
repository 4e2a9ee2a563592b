package admin

import (
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/admin/service"
	"bistro/shared/constant"
	"bistro/transport/http/middleware"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Admin
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Admin, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard returns headline counts across every domain.
// @Summary Get the admin dashboard
// @Description Retrieve aggregate counts and revenue for the admin overview.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard metrics"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}
