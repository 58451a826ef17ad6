package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/stableflow/reserve-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read endpoints (public access)
		v1.GET("/accounts/:account", handler.GetAccount)
		v1.GET("/accounts/:account/allowances/:spender", handler.GetAllowance)
		v1.GET("/supply", handler.GetSupply)
		v1.GET("/reserve", handler.GetReserve)
		v1.GET("/events", handler.ListEvents)

		// Token operations; the host authenticates callers upstream,
		// the engine enforces balances and allowances
		v1.POST("/transfers", handler.Transfer)
		v1.POST("/approvals", handler.Approve)

		// Supply and lock management (requires authentication; the
		// engine additionally enforces component ownership)
		v1.POST("/mint", middleware.Auth(authCfg), handler.Mint)
		v1.POST("/burn", middleware.Auth(authCfg), handler.Burn)
		v1.POST("/locks", middleware.Auth(authCfg), handler.SetLock)

		// Reserve operations
		v1.POST("/liquidity", handler.AddLiquidity)
		v1.POST("/liquidity/remove", handler.RemoveLiquidity)
		v1.POST("/risk-reserve", handler.DepositRiskReserve)

		// Rebases (requires authentication)
		v1.POST("/rebase/expand", middleware.Auth(authCfg), handler.Expand)
		v1.POST("/rebase/contract", middleware.Auth(authCfg), handler.Contract)

		// Oracle price updates (requires API key authentication only)
		v1.POST("/oracle/prices", middleware.APIKeyAuth(authCfg), handler.UpdatePrices)
	}
}
