// Package http exposes the order service REST API on echo.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/partner"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	updatePartnerHandler     commands.UpdatePartnerCommandHandler

	// Query handlers
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getOrdersByPeriodHandler queries.GetOrdersByPeriodQueryHandler
	getPartnerByIDHandler    queries.GetPartnerByIDQueryHandler

	log *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	updatePartnerHandler commands.UpdatePartnerCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrdersByPeriodHandler queries.GetOrdersByPeriodQueryHandler,
	getPartnerByIDHandler queries.GetPartnerByIDQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		createPartnerHandler:     createPartnerHandler,
		updatePartnerHandler:     updatePartnerHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getOrdersByPeriodHandler: getOrdersByPeriodHandler,
		getPartnerByIDHandler:    getPartnerByIDHandler,
		log:                      logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/period", s.GetOrdersByPeriod)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.POST("/partners", s.CreatePartner)
	api.GET("/partners/:id", s.GetPartner)
	api.PUT("/partners/:id", s.UpdatePartner)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(body.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+idErr.Error())
		}

		unitPrice, priceErr := kernel.NewMoneyFromString(item.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
		}

		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), partnerID, items)
	if err != nil {
		return validationFailed(ctx, "Invalid order data", err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// GetOrdersByStatus handles GET /api/v1/orders?status= - lists orders in a status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesFromReadModel(orders))
}

// GetOrdersByPeriod handles GET /api/v1/orders/period?start=&end= - lists
// orders created in a time range. Bounds are RFC 3339 timestamps, inclusive.
func (s *Server) GetOrdersByPeriod(ctx echo.Context) error {
	start, err := time.Parse(time.RFC3339, ctx.QueryParam("start"))
	if err != nil {
		return badRequest(ctx, "Invalid period start: "+err.Error())
	}

	end, err := time.Parse(time.RFC3339, ctx.QueryParam("end"))
	if err != nil {
		return badRequest(ctx, "Invalid period end: "+err.Error())
	}

	query, err := queries.NewGetOrdersByPeriodQuery(start, end)
	if err != nil {
		return badRequest(ctx, "Invalid period: "+err.Error())
	}

	orders, err := s.getOrdersByPeriodHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesFromReadModel(orders))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body ChangeStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return validationFailed(ctx, "Invalid status change", err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order and
// returns any reserved credit to the partner.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// CreatePartner handles POST /api/v1/partners - registers a new partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var body NewPartner
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	creditLimit, err := kernel.NewMoneyFromString(body.CreditLimit)
	if err != nil {
		return badRequest(ctx, "Invalid credit limit: "+err.Error())
	}

	cmd, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), body.Name, creditLimit)
	if err != nil {
		return validationFailed(ctx, "Invalid partner data", err)
	}

	created, err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, partnerFromDomain(created))
}

// GetPartner handles GET /api/v1/partners/:id - retrieves one partner.
func (s *Server) GetPartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	query, err := queries.NewGetPartnerByIDQuery(partnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	resp, err := s.getPartnerByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Partner{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		CreditLimit: resp.CreditLimit.String(),
	})
}

// UpdatePartner handles PUT /api/v1/partners/:id - updates name and credit.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	var body NewPartner
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	creditLimit, err := kernel.NewMoneyFromString(body.CreditLimit)
	if err != nil {
		return badRequest(ctx, "Invalid credit limit: "+err.Error())
	}

	cmd, err := commands.NewUpdatePartnerCommand(partnerID, body.Name, creditLimit)
	if err != nil {
		return validationFailed(ctx, "Invalid partner data", err)
	}

	updated, err := s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.businessError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, partnerFromDomain(updated))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// validationFailed answers 400 with one FieldError per violated field.
func validationFailed(ctx echo.Context, message string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:        http.StatusBadRequest,
		Message:     message,
		FieldErrors: fieldErrorsFrom(err),
	})
}

// businessError maps domain failures onto HTTP status codes. Anything not in
// the taxonomy is logged with full detail and answered with an opaque 500 so
// storage and broker internals never reach the caller.
func (s *Server) businessError(ctx echo.Context, err error) error {
	var code int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidStatusTransition):
		code = http.StatusConflict
	case errors.Is(err, partner.ErrInsufficientCredit):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return validationFailed(ctx, err.Error(), err)
	default:
		s.log.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// fieldErrorsFrom flattens a joined validation error into field/message
// pairs. Leaves that name no field keep an empty field name.
func fieldErrorsFrom(err error) []FieldError {
	fields := make([]FieldError, 0, 1)
	for _, cause := range leafErrors(err) {
		fields = append(fields, FieldError{
			Field:   fieldName(cause),
			Message: cause.Error(),
		})
	}
	return fields
}

func leafErrors(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var leaves []error
	for _, cause := range joined.Unwrap() {
		leaves = append(leaves, leafErrors(cause)...)
	}
	return leaves
}

func fieldName(err error) string {
	var (
		notFound *errs.ObjectNotFoundError
		exists   *errs.ObjectAlreadyExistsError
		invalid  *errs.ValueIsInvalidError
		required *errs.ValueIsRequiredError
	)

	switch {
	case errors.Is(err, commands.ErrOrderItemsAreRequired):
		return "items"
	case errors.Is(err, commands.ErrItemQuantityIsInvalid):
		return "quantity"
	case errors.Is(err, commands.ErrItemPriceIsNegative):
		return "unitPrice"
	case errors.Is(err, commands.ErrPartnerNameIsRequired):
		return "name"
	case errors.Is(err, commands.ErrCreditLimitIsNegative):
		return "creditLimit"
	case errors.As(err, &notFound):
		return notFound.ParamName
	case errors.As(err, &exists):
		return exists.ParamName
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &required):
		return required.ParamName
	}
	return ""
}
