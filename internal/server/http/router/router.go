package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/server/http/handlers"
	"github.com/polkiloo/storeadmin/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	validate := handlers.NewValidator()
	authHandler := handlers.NewAuthHandler(facade, validate)
	orderHandler := handlers.NewOrderHandler(facade, validate)
	customerHandler := handlers.NewCustomerHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)

	authed := auth.Group("")
	authed.Use(middleware.SessionRequired(facade))
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/me", authHandler.Me)

	admin := api.Group("/admin")
	admin.Use(middleware.SessionRequired(facade))
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/stats", orderHandler.Stats)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/customers", customerHandler.List)
	admin.GET("/notifications", notificationHandler.List)
	admin.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	admin.PUT("/notifications/:id/read", notificationHandler.MarkRead)

	return engine
}
