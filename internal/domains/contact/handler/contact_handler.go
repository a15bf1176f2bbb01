package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/contact/model"
	"arte-gallery-backend/internal/domains/contact/service"
	"arte-gallery-backend/internal/shared/response"
)

type ContactHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact/submit
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

// ArtworkInquiry handles POST /api/contact/artwork-inquiry
func (h *ContactHandler) ArtworkInquiry(c *gin.Context) {
	var req model.ArtworkInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	msg, err := h.service.SubmitArtworkInquiry(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

// List handles GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	var req model.ListContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	messages, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, messages, response.NewMeta(req.Page, req.Limit, total))
}

// Get handles GET /api/contact/:id (admin)
func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// MarkRead handles PATCH /api/contact/:id/read (admin)
func (h *ContactHandler) MarkRead(c *gin.Context) {
	msg, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// UpdateStatus handles PATCH /api/contact/:id/status (admin)
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	msg, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// Delete handles DELETE /api/contact/:id (admin)
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
