// Package http exposes the order lifecycle over REST. It coordinates between
// echo handlers and the application use cases, owning all JSON shaping and
// error-to-status mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/commands"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/queries"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order lifecycle.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		advanceOrderHandler:    advanceOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes mounts the order routes and the health probe on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/orders", s.GetActiveOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.POST("/orders/:id/advance", s.AdvanceOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetActiveOrders handles GET /orders - lists all non-delivered orders,
// newest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	data := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, toOrderSummary(o))
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// CreateOrder handles POST /orders - creates an order in initiated status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: "invalid request body"})
	}

	if fieldErrors := request.validate(); len(fieldErrors) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, validationEnvelope{
			Success: false,
			Message: "validation failed",
			Errors:  fieldErrors,
		})
	}

	items := make([]commands.OrderItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.OrderItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), request.ClientName, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "order created",
		Data:    toOrderDetail(created),
	})
}

// GetOrder handles GET /orders/:id - returns one order with items and logs.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, ok := s.orderQueryFromPath(ctx)
	if !ok {
		return s.respondNotFound(ctx)
	}

	retrieved, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderDetail(retrieved)})
}

// AdvanceOrder handles POST /orders/:id/advance - moves an order to its next
// status; the terminal transition removes the order.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondNotFound(ctx)
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return s.respondNotFound(ctx)
	}

	result, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if result.Completed {
		return ctx.JSON(http.StatusOK, envelope{Success: true, Message: "order finished and removed"})
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "order status advanced",
		Data:    toOrderDetail(result.Order),
	})
}

func (s *Server) orderQueryFromPath(ctx echo.Context) (queries.GetOrderQuery, bool) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return queries.GetOrderQuery{}, false
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.GetOrderQuery{}, false
	}

	return query, true
}

func (s *Server) respondNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, envelope{Success: false, Message: "order not found"})
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.respondNotFound(ctx)
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, envelope{
			Success: false,
			Message: "order was modified by a concurrent request",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "internal server error",
		})
	}
}
