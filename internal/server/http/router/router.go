package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/refward/refward/internal/server/http/handlers"
	"github.com/refward/refward/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RewardsFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	referralHandler := handlers.NewReferralHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)

	api := engine.Group("/api")
	api.GET("/reward/:code", referralHandler.CheckCode)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/profile", userHandler.Profile)
	userAuth.GET("/referrals", referralHandler.List)
	userAuth.GET("/balance", balanceHandler.Summary)
	userAuth.POST("/balance/withdraw", balanceHandler.Withdraw)
	userAuth.GET("/withdrawals", balanceHandler.Withdrawals)

	return engine
}
