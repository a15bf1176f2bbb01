package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/blog/model"
	"arte-gallery-backend/internal/domains/blog/service"
	"arte-gallery-backend/internal/shared/response"
)

type BlogHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blog
func (h *BlogHandler) List(c *gin.Context) {
	var req model.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	posts, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, posts, response.NewMeta(req.Page, req.Limit, total))
}

// Get handles GET /api/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Create handles POST /api/blog (admin)
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

// Update handles PATCH /api/blog/:id (admin)
func (h *BlogHandler) Update(c *gin.Context) {
	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Delete handles DELETE /api/blog/:id (admin)
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
