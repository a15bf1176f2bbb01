package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/domains/user/model"
	"arte-gallery-backend/internal/domains/user/service"
	"arte-gallery-backend/internal/shared/middleware"
	"arte-gallery-backend/internal/shared/response"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	auth, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, auth)
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	auth, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, auth)
}

// Refresh handles POST /api/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	auth, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, auth)
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateMe handles PATCH /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// SaveArtwork handles POST /api/users/me/saved-artworks/:id
func (h *UserHandler) SaveArtwork(c *gin.Context) {
	if err := h.service.SaveArtwork(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

// UnsaveArtwork handles DELETE /api/users/me/saved-artworks/:id
func (h *UserHandler) UnsaveArtwork(c *gin.Context) {
	if err := h.service.UnsaveArtwork(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": false})
}

// AddToWishlist handles POST /api/users/me/wishlist/:id
func (h *UserHandler) AddToWishlist(c *gin.Context) {
	if err := h.service.AddToWishlist(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wishlisted": true})
}

// RemoveFromWishlist handles DELETE /api/users/me/wishlist/:id
func (h *UserHandler) RemoveFromWishlist(c *gin.Context) {
	if err := h.service.RemoveFromWishlist(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wishlisted": false})
}
