package http

import (
	"net/http"
	"strconv"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetRestaurants handles GET /restaurants - lists restaurants.
// Accepts optional "cuisine" and "is_active" query parameters; listing
// defaults to active restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	isActive := true
	if raw := ctx.QueryParam("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondValidationError(ctx, err)
		}
		isActive = parsed
	}

	query := queries.NewGetRestaurantsQuery(ctx.QueryParam("cuisine"), isActive)

	restaurants, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = restaurantFromQuery(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurant handles GET /restaurants/:id - retrieves one restaurant,
// active or not.
func (s *Server) GetRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	restaurant, err := s.getRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, restaurantFromQuery(restaurant))
}

// GetRestaurantMenu handles GET /restaurants/:id/menu - lists a restaurant's
// available dishes. Accepts an optional "category" query parameter.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	restaurantQuery, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	restaurant, err := s.getRestaurantHandler.Handle(ctx.Request().Context(), restaurantQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	menuQuery, err := queries.NewGetRestaurantMenuQuery(restaurantID, ctx.QueryParam("category"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	items, err := s.getRestaurantMenuHandler.Handle(ctx.Request().Context(), menuQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	menuItems := make([]MenuItem, len(items))
	for i, item := range items {
		menuItems[i] = menuItemFromQuery(item)
	}

	return ctx.JSON(http.StatusOK, RestaurantMenu{
		Restaurant: restaurantFromQuery(restaurant),
		MenuItems:  menuItems,
	})
}

// GetMenuItem handles GET /menu/items/:id - retrieves one menu item, even
// when sold out.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	menuItemID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return respondValidationError(ctx, err)
	}

	query, err := queries.NewGetMenuItemQuery(menuItemID)
	if err != nil {
		return respondValidationError(ctx, err)
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuItemFromQuery(item))
}
