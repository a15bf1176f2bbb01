package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/order/model"
	"arte-gallery-backend/internal/domains/order/service"
	"arte-gallery-backend/internal/shared/middleware"
	"arte-gallery-backend/internal/shared/response"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders. Guests may order; a signed-in customer
// gets the order linked to their account.
func (h *OrderHandler) Create(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.service.GetOrder(
		c.Request.Context(), c.Param("id"),
		c.GetString(middleware.ContextUserID), isAdmin(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// Track handles GET /api/orders/track/:number (public)
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.service.TrackByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	// The public view exposes progress, not addresses or line prices.
	response.Success(c, http.StatusOK, gin.H{
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
		"tracking":    order.Tracking,
	})
}

// MyOrders handles GET /api/orders/mine
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.service.ListUserOrders(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// List handles GET /api/orders (admin)
func (h *OrderHandler) List(c *gin.Context) {
	var req model.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	orders, total, err := h.service.ListOrders(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, orders, response.NewMeta(req.Page, req.Limit, total))
}

// UpdateStatus handles PATCH /api/orders/:id/status (admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(
		c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// Cancel handles POST /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.service.CancelOrder(
		c.Request.Context(), c.Param("id"),
		c.GetString(middleware.ContextUserID), isAdmin(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(middleware.ContextRole) == "admin"
}
