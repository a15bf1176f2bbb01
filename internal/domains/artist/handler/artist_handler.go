package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/artist/model"
	"arte-gallery-backend/internal/domains/artist/service"
	"arte-gallery-backend/internal/shared/middleware"
	"arte-gallery-backend/internal/shared/response"
)

type ArtistHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List handles GET /api/artists
func (h *ArtistHandler) List(c *gin.Context) {
	var req model.ListArtistsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	artists, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, artists, response.NewMeta(req.Page, req.Limit, total))
}

// Get handles GET /api/artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// Create handles POST /api/artists (admin)
func (h *ArtistHandler) Create(c *gin.Context) {
	var req model.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	artist, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, artist)
}

// Update handles PATCH /api/artists/:id (admin)
func (h *ArtistHandler) Update(c *gin.Context) {
	var req model.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	artist, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// Delete handles DELETE /api/artists/:id (admin)
func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// SubmitVerification handles POST /api/artists/:id/verification
func (h *ArtistHandler) SubmitVerification(c *gin.Context) {
	var req model.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	artist, err := h.service.SubmitVerification(
		c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), isAdmin(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, artist)
}

// ReviewVerification handles POST /api/artists/:id/verification/review (admin)
func (h *ArtistHandler) ReviewVerification(c *gin.Context) {
	var req model.ReviewVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	artist, err := h.service.ReviewVerification(
		c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

// AddContribution handles POST /api/artists/:id/contributions
func (h *ArtistHandler) AddContribution(c *gin.Context) {
	var req model.AddContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	contribution, err := h.service.AddContribution(
		c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID), isAdmin(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contribution)
}

// UpdateContribution handles PATCH /api/artists/:id/contributions/:contributionId
func (h *ArtistHandler) UpdateContribution(c *gin.Context) {
	var req model.UpdateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	contribution, err := h.service.UpdateContribution(
		c.Request.Context(), c.Param("id"), c.Param("contributionId"),
		c.GetString(middleware.ContextUserID), isAdmin(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contribution)
}

// ReviewContribution handles POST /api/artists/:id/contributions/:contributionId/review (admin)
func (h *ArtistHandler) ReviewContribution(c *gin.Context) {
	var req model.ReviewContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	contribution, err := h.service.ReviewContribution(
		c.Request.Context(), c.Param("id"), c.Param("contributionId"),
		c.GetString(middleware.ContextUserID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contribution)
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(middleware.ContextRole) == "admin"
}
