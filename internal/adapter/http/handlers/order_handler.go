package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "printlite/internal/adapter/http/dto/request"
	response "printlite/internal/adapter/http/dto/response"
	"printlite/internal/domain/entities"
	"printlite/internal/domain/pricing"
	"printlite/internal/usecase"
	"printlite/internal/usecase/interfaces"
	"printlite/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder handles the checkout flow: it prices the selection and persists
// a pending order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateOrderCommand{
		CustomerName:        payload.CustomerName,
		Email:               payload.Email,
		Phone:               payload.Phone,
		DeliveryAddress:     payload.DeliveryAddress,
		Files:               payload.ResolveFiles(),
		Settings:            payload.ResolveSettings(),
		PageRange:           payload.PageRange,
		PaymentMethod:       payload.ResolvePaymentMethod(),
		SpecialInstructions: payload.SpecialInstructions,
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders is the admin dashboard query. Supports ?status=, ?email= and a
// ?limit= pagination extension.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid limit", http.StatusBadRequest).ToHTTPError())
			return
		}
		limit = parsed
	}

	filter := interfaces.OrderFilter{
		Status: entities.OrderStatus(c.Query("status")),
		Email:  c.Query("email"),
		Limit:  limit,
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), filter)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), payload.AdminNotes)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var payload request.PaymentStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), payload.ResolvePaymentStatus())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if _, err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// TrackOrder returns the customer-safe projection.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	tracking, err := h.usecase.TrackOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTracking(tracking))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerInfo),
		errors.Is(err, usecase.ErrNoFiles),
		errors.Is(err, usecase.ErrInvalidFilePages),
		errors.Is(err, usecase.ErrEmptySelection),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrUnknownStatus),
		errors.Is(err, usecase.ErrUnknownPaymentStatus),
		errors.Is(err, usecase.ErrUnknownPaymentMethod),
		errors.Is(err, entities.ErrInvalidPrintSettings),
		errors.Is(err, pricing.ErrInvalidPageCount),
		errors.Is(err, pricing.ErrMalformedPageRange),
		errors.Is(err, pricing.ErrPageOutOfRange):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCancelNotAllowed):
		return pkg.NewDomainErrorSimple("CANCEL_NOT_ALLOWED", "Order can no longer be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
