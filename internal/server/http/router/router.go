package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/minivenmo/internal/server/http/handlers"
	"github.com/polkiloo/minivenmo/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LedgerFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	users := engine.Group("/api/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:username", userHandler.Get)
	users.POST("/:username/balance", userHandler.Deposit)
	users.POST("/:username/friends", userHandler.AddFriend)
	users.GET("/:username/feed", userHandler.Feed)
	users.POST("/:username/payments", paymentHandler.Pay)
	users.GET("/:username/payments", paymentHandler.List)

	return engine
}
