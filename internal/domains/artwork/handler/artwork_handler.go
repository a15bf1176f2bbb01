package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/artwork/model"
	"arte-gallery-backend/internal/domains/artwork/service"
	"arte-gallery-backend/internal/shared/response"
)

type ArtworkHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// List handles GET /api/artworks
func (h *ArtworkHandler) List(c *gin.Context) {
	var req model.ListArtworksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	artworks, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, artworks, response.NewMeta(req.Page, req.Limit, total))
}

// Get handles GET /api/artworks/:id and counts the view.
func (h *ArtworkHandler) Get(c *gin.Context) {
	artwork, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artwork)
}

// Create handles POST /api/artworks (admin)
func (h *ArtworkHandler) Create(c *gin.Context) {
	var req model.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	artwork, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, artwork)
}

// Update handles PATCH /api/artworks/:id (admin)
func (h *ArtworkHandler) Update(c *gin.Context) {
	var req model.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	artwork, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artwork)
}

// Delete handles DELETE /api/artworks/:id (admin)
func (h *ArtworkHandler) Delete(c *gin.Context) {
	if err := h.service.RemoveArtwork(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Like handles POST /api/artworks/:id/like
func (h *ArtworkHandler) Like(c *gin.Context) {
	likes, err := h.service.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes": likes})
}

// Unlike handles DELETE /api/artworks/:id/like
func (h *ArtworkHandler) Unlike(c *gin.Context) {
	likes, err := h.service.Unlike(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes": likes})
}

// UploadImage handles POST /api/artworks/:id/images (admin, multipart)
func (h *ArtworkHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}

	artwork, err := h.service.UploadImage(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, artwork)
}
