package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the dashboard API on router
func RegisterRoutes(router gin.IRouter, profileHandler *ProfileHandler, priceHandler *PriceHandler, adminHandler *AdminHandler) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Holdings routes
	router.GET("/companies", profileHandler.ListCompanies)
	router.GET("/profiles", profileHandler.ListProfiles)
	router.GET("/allocation", profileHandler.Allocation)
	router.GET("/top", profileHandler.TopHoldings)

	// Price routes
	router.GET("/tickers", priceHandler.ListTickers)
	router.GET("/prices", priceHandler.Trend)
	router.GET("/candlestick/:ticker", priceHandler.Candlestick)

	// Admin routes
	router.POST("/admin/reload", adminHandler.Reload)
	router.GET("/admin/cache", adminHandler.CacheStats)
}
