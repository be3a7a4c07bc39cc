package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/handlers"
	"github.com/tarang07q/NewsPlus/internal/middleware"
	"github.com/tarang07q/NewsPlus/internal/services"
)

// Handlers bundles everything SetupRoutes wires up. Built once in main.
type Handlers struct {
	Auth        *handlers.AuthHandler
	News        *handlers.NewsHandler
	Bookmarks   *handlers.BookmarkHandler
	Likes       *handlers.LikeHandler
	History     *handlers.HistoryHandler
	Alerts      *handlers.AlertHandler
	Preferences *handlers.PreferenceHandler
	Users       *services.UserService
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	// Apply global middleware
	r.Use(middleware.Logger())

	v1 := r.Group("/api/v1")

	authRouterV1 := v1.Group("/auth")
	{
		authRouterV1.POST("/register", h.Auth.Register)
		authRouterV1.POST("/login", h.Auth.Login)
		authRouterV1.POST("/logout", middleware.Auth(h.Users), h.Auth.Logout)
	}

	newsRouterV1 := v1.Group("/news")
	{
		newsRouterV1.GET("", h.News.Browse)
		newsRouterV1.GET("/trending", h.News.Trending)
		newsRouterV1.GET("/sources/:source", h.News.BySource)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(h.Users))
	{
		protected.GET("/bookmarks", h.Bookmarks.List)
		protected.POST("/bookmarks", h.Bookmarks.Add)
		protected.DELETE("/bookmarks", h.Bookmarks.Remove)

		protected.GET("/likes", h.Likes.List)
		protected.POST("/likes", h.Likes.Add)
		protected.DELETE("/likes", h.Likes.Remove)

		protected.GET("/history", h.History.List)
		protected.POST("/history", h.History.Record)
		protected.DELETE("/history", h.History.Remove)
		protected.GET("/history/stats", h.History.Stats)

		protected.GET("/preferences", h.Preferences.Get)
		protected.PUT("/preferences", h.Preferences.Update)

		protected.GET("/alerts", h.Alerts.List)
		protected.POST("/alerts", h.Alerts.Add)
		protected.PUT("/alerts/enabled", h.Alerts.SetEnabled)
		protected.PATCH("/alerts/:id", h.Alerts.Toggle)
		protected.DELETE("/alerts/:id", h.Alerts.Remove)
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
