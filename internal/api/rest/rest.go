package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. Extra handlers in deployGuards
// run before the deploy endpoint, typically authentication.
func SetupRoutes(router *gin.Engine, handler Handler, deployGuards ...gin.HandlerFunc) {
	// Health check endpoint (no prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/tokens", handler.ListTokens)
		api.POST("/tokens", handler.RegisterToken)

		api.GET("/tokens/creator/:creator", handler.GetTokensByCreator)
		api.POST("/tokens/deploy", append(deployGuards, handler.DeployToken)...)

		api.GET("/tokens/:address", handler.GetToken)
		api.POST("/tokens/:address/refresh", handler.RefreshToken)
	}
}
