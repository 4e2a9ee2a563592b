package review

import (
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/review/model"
	"bistro/internal/domains/review/model/dto"
	"bistro/internal/domains/review/service"
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
	service    service.Review
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Review, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)
		routerGroup.Get("/", handler.GetApprovedReviews)
		routerGroup.Get("/mine", handler.GetMyReviews)
		routerGroup.Get("/all", handler.GetReviews)
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/{id}", handler.GetReviewByID)
		routerGroup.Patch("/{id}", handler.UpdateReview)
		routerGroup.Patch("/{id}/moderate", handler.ModerateReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// CreateReview handles the creation of a new review.
// @Summary Create a new review
// @Description Review a menu item from one of the caller's delivered orders.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} dto.ReviewResponse "Review created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	review, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, review)
}

// GetApprovedReviews lists approved reviews, the public review feed.
// @Summary Get approved reviews
// @Description Retrieve approved reviews, optionally restricted to a menu item, with the average rating.
// @Tags Review
// @Produce json
// @Param menu_item_id query string false "Filter by menu item"
// @Success 200 {object} dto.GetReviewsResponse "List of approved reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetApprovedReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovedReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reviews, err := handler.service.GetApproved(ctx, queryParams, r.URL.Query().Get(model.FieldMenuItemID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get approved reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Approved reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetMyReviews lists the authenticated user's own reviews.
// @Summary Get my reviews
// @Description Retrieve the caller's reviews in any moderation status.
// @Tags Review
// @Produce json
// @Success 200 {object} dto.GetReviewsResponse "List of the caller's reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviews retrieves reviews in any status for moderation.
// @Summary Get all reviews
// @Description Retrieve reviews in any moderation status with optional filtering and pagination.
// @Tags Review
// @Produce json
// @Param status query string false "Filter by status"
// @Param menu_item_id query string false "Filter by menu item"
// @Success 200 {object} dto.GetReviewsResponse "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/all [get]
// @Security BearerAuth
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
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

	if menuItemID := r.URL.Query().Get(model.FieldMenuItemID); menuItemID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldMenuItemID,
			Operator: gDto.FilterOperatorEq,
			Value:    menuItemID,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviewByID retrieves a review by its ID.
// @Summary Get a review by ID
// @Description Retrieve a review by its unique identifier.
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReviewResponse "Review details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	review, err := handler.service.Get(ctx, id, shared.OwnerScope(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get review by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review retrieved successfully")

	response.WithJSON(w, http.StatusOK, review)
}

// UpdateReview edits the caller's own review.
// @Summary Update a review by ID
// @Description Update the rating or comment of the caller's own review.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Update Review Request"
// @Success 200 {object} response.Message "Review updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Update(ctx, req, id, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review updated successfully by user " + userID)

	response.WithMessage(w, http.StatusOK, "Review updated successfully")
}

// ModerateReview approves or rejects a review.
// @Summary Moderate a review
// @Description Approve or reject a review. The author is notified of the outcome.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.ModerateReviewRequest true "Moderate Review Request"
// @Success 200 {object} response.Message "Review moderated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id}/moderate [patch]
// @Security BearerAuth
func (handler *Handler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ModerateReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ModerateReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Moderate(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to moderate review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review moderated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review moderated successfully")
}

// DeleteReview deletes a review by its ID.
// @Summary Delete a review by ID
// @Description Delete a review using its unique identifier.
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, shared.OwnerScope(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
