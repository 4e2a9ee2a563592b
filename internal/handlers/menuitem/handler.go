package menuitem

import (
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/menuitem/model"
	"bistro/internal/domains/menuitem/model/dto"
	"bistro/internal/domains/menuitem/service"
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
	service    service.MenuItem
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.MenuItem, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu-items", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth, handler.middleware.RBAC)
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})
}

// CreateMenuItem handles the creation of a new menu item.
// @Summary Create a new menu item
// @Description Create a new menu item with an optional image.
// @Tags MenuItem
// @Accept multipart/form-data
// @Produce json
// @Param category_id formData string true "Category ID"
// @Param name formData string true "Menu item name"
// @Param description formData string false "Menu item description"
// @Param price formData number true "Menu item price"
// @Param available formData boolean false "Menu item availability"
// @Param image formData file false "Menu item image"
// @Success 201 {object} response.Message "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateMenuItemRequest{
		CategoryID: request.FormValue("category_id"),
		Name:       request.FormValue("name"),
	}

	if description := request.FormValue("description"); description != "" {
		req.Description = &description
	}

	if priceStr := request.FormValue("price"); priceStr != "" {
		if price, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.Price = price
		}
	}

	if availableStr := request.FormValue("available"); availableStr != "" {
		req.Available = shared.ConvertStringToBool(availableStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Menu item created successfully")
}

// GetMenuItems retrieves all menu items based on query parameters.
// @Summary Get all menu items
// @Description Retrieve all menu items with optional filtering and pagination.
// @Tags MenuItem
// @Produce json
// @Param name query string false "Filter by name"
// @Param category_id query string false "Filter by category"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} dto.GetMenuItemsResponse "List of menu items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [get]
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if categoryID := r.URL.Query().Get(model.FieldCategoryID); categoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	menuItems, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu items retrieved successfully")

	response.WithJSON(w, http.StatusOK, menuItems)
}

// GetMenuItemByID retrieves a menu item by its ID.
// @Summary Get a menu item by ID
// @Description Retrieve a menu item by its unique identifier.
// @Tags MenuItem
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} dto.MenuItemResponse "Menu item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [get]
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	menuItem, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item retrieved successfully")

	response.WithJSON(w, http.StatusOK, menuItem)
}

// UpdateMenuItem updates an existing menu item by its ID.
// @Summary Update a menu item by ID
// @Description Update the details of an existing menu item.
// @Tags MenuItem
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Menu Item ID"
// @Param category_id formData string false "Category ID"
// @Param name formData string false "Menu item name"
// @Param description formData string false "Menu item description"
// @Param price formData number false "Menu item price"
// @Param available formData boolean false "Menu item availability"
// @Param image formData file false "Menu item image"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateMenuItemRequest{}

	if categoryID := request.FormValue("category_id"); categoryID != "" {
		req.CategoryID = &categoryID
	}

	if name := request.FormValue("name"); name != "" {
		req.Name = &name
	}

	if description := request.FormValue("description"); description != "" {
		req.Description = &description
	}

	if priceStr := request.FormValue("price"); priceStr != "" {
		if price, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.Price = &price
		}
	}

	if availableStr := request.FormValue("available"); availableStr != "" {
		req.Available = shared.ConvertStringToBool(availableStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Menu item updated successfully")
}

// DeleteMenuItem deletes a menu item by its ID.
// @Summary Delete a menu item by ID
// @Description Delete a menu item using its unique identifier.
// @Tags MenuItem
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
