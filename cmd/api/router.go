package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/shared/middleware"
	"arte-gallery-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.SanitizeInput(),
		cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(c))

		setupAuthRoutes(api, c)
		setupUserRoutes(api, c)
		setupArtistRoutes(api, c)
		setupArtworkRoutes(api, c)
		setupExhibitionRoutes(api, c)
		setupProductRoutes(api, c)
		setupOrderRoutes(api, c)
		setupBlogRoutes(api, c)
		setupContactRoutes(api, c)
		setupNewsletterRoutes(api, c)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.Me)
		users.PATCH("/me", c.UserHandler.UpdateMe)
		users.POST("/me/saved-artworks/:id", c.UserHandler.SaveArtwork)
		users.DELETE("/me/saved-artworks/:id", c.UserHandler.UnsaveArtwork)
		users.POST("/me/wishlist/:id", c.UserHandler.AddToWishlist)
		users.DELETE("/me/wishlist/:id", c.UserHandler.RemoveFromWishlist)
	}
}

func setupArtistRoutes(api *gin.RouterGroup, c *container.Container) {
	artists := api.Group("/artists")
	{
		artists.GET("", c.ArtistHandler.List)
		artists.GET("/:id", c.ArtistHandler.Get)
	}

	authed := api.Group("/artists")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		// Verification and contributions check ownership in the service;
		// admins pass through either way.
		authed.POST("/:id/verification", c.ArtistHandler.SubmitVerification)
		authed.POST("/:id/contributions", c.ArtistHandler.AddContribution)
		authed.PATCH("/:id/contributions/:contributionId", c.ArtistHandler.UpdateContribution)
	}

	admin := api.Group("/artists")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("", c.ArtistHandler.Create)
		admin.PATCH("/:id", c.ArtistHandler.Update)
		admin.DELETE("/:id", c.ArtistHandler.Delete)
		admin.POST("/:id/verification/review", c.ArtistHandler.ReviewVerification)
		admin.POST("/:id/contributions/:contributionId/review", c.ArtistHandler.ReviewContribution)
	}
}

func setupArtworkRoutes(api *gin.RouterGroup, c *container.Container) {
	artworks := api.Group("/artworks")
	{
		artworks.GET("", c.ArtworkHandler.List)
		artworks.GET("/:id", c.ArtworkHandler.Get)
	}

	authed := api.Group("/artworks")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.POST("/:id/like", c.ArtworkHandler.Like)
		authed.DELETE("/:id/like", c.ArtworkHandler.Unlike)
	}

	admin := api.Group("/artworks")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("", c.ArtworkHandler.Create)
		admin.PATCH("/:id", c.ArtworkHandler.Update)
		admin.DELETE("/:id", c.ArtworkHandler.Delete)
		admin.POST("/:id/images", c.ArtworkHandler.UploadImage)
	}
}

func setupExhibitionRoutes(api *gin.RouterGroup, c *container.Container) {
	exhibitions := api.Group("/exhibitions")
	{
		exhibitions.GET("", c.ExhibHandler.List)
		exhibitions.GET("/:id", c.ExhibHandler.Get)
		// Guests may book; a signed-in visitor gets the ticket on their
		// account.
		exhibitions.POST("/:id/tickets", middleware.OptionalAuthMiddleware(c.JWTManager), c.ExhibHandler.BookTicket)
	}

	admin := api.Group("/exhibitions")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("", c.ExhibHandler.Create)
		admin.PATCH("/:id", c.ExhibHandler.Update)
		admin.DELETE("/:id", c.ExhibHandler.Delete)
	}

	tickets := api.Group("/tickets")
	tickets.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		tickets.GET("", c.ExhibHandler.MyTickets)
		tickets.POST("/:id/cancel", c.ExhibHandler.CancelTicket)
	}
}

func setupProductRoutes(api *gin.RouterGroup, c *container.Container) {
	products := api.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.GET("/featured", c.ProductHandler.Featured)
		products.GET("/:id", c.ProductHandler.Get)
		products.GET("/:id/related", c.ProductHandler.Related)
	}

	admin := api.Group("/products")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("", c.ProductHandler.Create)
		admin.PATCH("/:id", c.ProductHandler.Update)
		admin.DELETE("/:id", c.ProductHandler.Delete)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blog := api.Group("/blog")
	{
		blog.GET("", c.BlogHandler.List)
		blog.GET("/:id", c.BlogHandler.Get)
	}

	admin := api.Group("/blog")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("", c.BlogHandler.Create)
		admin.PATCH("/:id", c.BlogHandler.Update)
		admin.DELETE("/:id", c.BlogHandler.Delete)
	}
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	contact := api.Group("/contact")
	{
		contact.POST("/submit", c.ContactHandler.Submit)
		contact.POST("/artwork-inquiry", c.ContactHandler.ArtworkInquiry)
	}

	admin := api.Group("/contact")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("", c.ContactHandler.List)
		admin.GET("/:id", c.ContactHandler.Get)
		admin.PATCH("/:id/read", c.ContactHandler.MarkRead)
		admin.PATCH("/:id/status", c.ContactHandler.UpdateStatus)
		admin.DELETE("/:id", c.ContactHandler.Delete)
	}
}

func setupNewsletterRoutes(api *gin.RouterGroup, c *container.Container) {
	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("/subscribe", c.NewsletterHandler.Subscribe)
		newsletter.POST("/unsubscribe", c.NewsletterHandler.Unsubscribe)
	}
}

func setupOrderRoutes(api *gin.RouterGroup, c *container.Container) {
	orders := api.Group("/orders")
	{
		orders.POST("", middleware.OptionalAuthMiddleware(c.JWTManager), c.OrderHandler.Create)
		orders.GET("/track/:number", c.OrderHandler.Track)
	}

	authed := api.Group("/orders")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.GET("/mine", c.OrderHandler.MyOrders)
		authed.GET("/:id", c.OrderHandler.Get)
		authed.POST("/:id/cancel", c.OrderHandler.Cancel)
	}

	admin := api.Group("/orders")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("", c.OrderHandler.List)
		admin.PATCH("/:id/status", c.OrderHandler.UpdateStatus)
	}
}
