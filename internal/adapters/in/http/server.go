// Package http exposes the dispatch REST API on echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCourier is the request body for courier registration.
type NewCourier struct {
	Name      string `json:"name"`
	Transport string `json:"transport"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	Street string `json:"street"`
}

// Location is the grid position in API responses.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Courier is one courier in the fleet response.
type Courier struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Order is one pending order in the active orders response.
type Order struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
}

// Server wires the REST API to the application's command and query handlers.
type Server struct {
	createCourierHandler commands.CreateCourierCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler

	getAllCouriersHandler       queries.GetAllCouriersQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates an HTTP server facade over the given handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
) *Server {
	return &Server{
		createCourierHandler:        createCourierHandler,
		createOrderHandler:          createOrderHandler,
		getAllCouriersHandler:       getAllCouriersHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, body.Transport)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier data: " + err.Error(),
		})
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create courier",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve couriers",
		})
	}

	response := make([]Courier, len(couriers))
	for i, c := range couriers {
		response[i] = Courier{
			ID:   c.ID.String(),
			Name: c.Name,
			Location: Location{
				X: int(c.Location.X()),
				Y: int(c.Location.Y()),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The order id is generated here;
// orders arriving through the message bus carry their basket id instead.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), body.Street)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders/active.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID: o.ID.String(),
			Location: Location{
				X: int(o.Location.X()),
				Y: int(o.Location.Y()),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
