// Package http exposes the application's use cases over a REST API.
// Handlers bind JSON requests, delegate to command and query handlers, and
// translate application errors into HTTP status codes.
package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler      commands.CreateCustomerCommandHandler
	createCourierHandler       commands.CreateCourierCommandHandler
	updateCourierStatusHandler commands.UpdateCourierStatusCommandHandler
	addToCartHandler           commands.AddToCartCommandHandler
	clearCartHandler           commands.ClearCartCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	assignCourierHandler       commands.AssignCourierCommandHandler

	// Query handlers
	getCustomerHandler       queries.GetCustomerQueryHandler
	getRestaurantsHandler    queries.GetRestaurantsQueryHandler
	getRestaurantHandler     queries.GetRestaurantQueryHandler
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler
	getMenuItemHandler       queries.GetMenuItemQueryHandler
	getCouriersHandler       queries.GetCouriersQueryHandler
	getCourierHandler        queries.GetCourierQueryHandler
	getCartHandler           queries.GetCartQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	updateCourierStatusHandler commands.UpdateCourierStatusCommandHandler,
	addToCartHandler commands.AddToCartCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getRestaurantsHandler queries.GetRestaurantsQueryHandler,
	getRestaurantHandler queries.GetRestaurantQueryHandler,
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	getCouriersHandler queries.GetCouriersQueryHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:      createCustomerHandler,
		createCourierHandler:       createCourierHandler,
		updateCourierStatusHandler: updateCourierStatusHandler,
		addToCartHandler:           addToCartHandler,
		clearCartHandler:           clearCartHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		assignCourierHandler:       assignCourierHandler,
		getCustomerHandler:         getCustomerHandler,
		getRestaurantsHandler:      getRestaurantsHandler,
		getRestaurantHandler:       getRestaurantHandler,
		getRestaurantMenuHandler:   getRestaurantMenuHandler,
		getMenuItemHandler:         getMenuItemHandler,
		getCouriersHandler:         getCouriersHandler,
		getCourierHandler:          getCourierHandler,
		getCartHandler:             getCartHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderHandler:            getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/customers", s.CreateCustomer)
	e.GET("/customers/:id", s.GetCustomer)

	e.GET("/restaurants", s.GetRestaurants)
	e.GET("/restaurants/:id", s.GetRestaurant)
	e.GET("/restaurants/:id/menu", s.GetRestaurantMenu)
	e.GET("/menu/items/:id", s.GetMenuItem)

	e.POST("/couriers", s.CreateCourier)
	e.GET("/couriers", s.GetCouriers)
	e.GET("/couriers/:id", s.GetCourier)
	e.PUT("/couriers/:id/status", s.UpdateCourierStatus)

	e.POST("/customers/:id/cart", s.AddToCart)
	e.GET("/customers/:id/cart", s.GetCart)
	e.DELETE("/customers/:id/cart", s.ClearCart)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.PUT("/orders/:id/assign-courier", s.AssignCourier)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
