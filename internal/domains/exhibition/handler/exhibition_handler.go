package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/exhibition/model"
	"arte-gallery-backend/internal/domains/exhibition/service"
	"arte-gallery-backend/internal/shared/middleware"
	"arte-gallery-backend/internal/shared/response"
)

type ExhibitionHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *ExhibitionHandler {
	return &ExhibitionHandler{service: service}
}

// List handles GET /api/exhibitions
func (h *ExhibitionHandler) List(c *gin.Context) {
	var req model.ListExhibitionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	exhibitions, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, exhibitions, response.NewMeta(req.Page, req.Limit, total))
}

// Get handles GET /api/exhibitions/:id
func (h *ExhibitionHandler) Get(c *gin.Context) {
	exhibition, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, exhibition)
}

// Create handles POST /api/exhibitions (admin)
func (h *ExhibitionHandler) Create(c *gin.Context) {
	var req model.CreateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	exhibition, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, exhibition)
}

// Update handles PATCH /api/exhibitions/:id (admin)
func (h *ExhibitionHandler) Update(c *gin.Context) {
	var req model.UpdateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	exhibition, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, exhibition)
}

// Delete handles DELETE /api/exhibitions/:id (admin)
func (h *ExhibitionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// BookTicket handles POST /api/exhibitions/:id/tickets. Anonymous visitors
// may book; a signed-in visitor gets the ticket linked to their account.
func (h *ExhibitionHandler) BookTicket(c *gin.Context) {
	var req model.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ticket, err := h.service.BookTicket(
		c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ticket)
}

// MyTickets handles GET /api/tickets
func (h *ExhibitionHandler) MyTickets(c *gin.Context) {
	tickets, err := h.service.ListUserTickets(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tickets)
}

// CancelTicket handles POST /api/tickets/:id/cancel
func (h *ExhibitionHandler) CancelTicket(c *gin.Context) {
	ticket, err := h.service.CancelTicket(
		c.Request.Context(), c.Param("id"),
		c.GetString(middleware.ContextUserID),
		c.GetString(middleware.ContextRole) == "admin")
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ticket)
}
