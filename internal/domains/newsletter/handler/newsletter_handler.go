package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/newsletter/model"
	"arte-gallery-backend/internal/domains/newsletter/service"
	"arte-gallery-backend/internal/shared/response"
)

type NewsletterHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subscribed": true})
}

// Unsubscribe handles POST /api/newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscribed": false})
}
