package routes

import (
	"net/http"

	"supply-chain-viz/internal/analytics"
	"supply-chain-viz/internal/config"
	"supply-chain-viz/internal/delivery/http/handler"
	domainDashboard "supply-chain-viz/internal/domain/dashboard"
	domainFacility "supply-chain-viz/internal/domain/facility"
	domainShipment "supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/events"
	"supply-chain-viz/internal/logger"
	"supply-chain-viz/internal/middleware"
	"supply-chain-viz/internal/realtime"
	"supply-chain-viz/internal/usecase/dashboard"
	"supply-chain-viz/internal/usecase/shipment"
	"supply-chain-viz/internal/usecase/supplier"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived components the HTTP layer is built on.
type Dependencies struct {
	Facilities domainFacility.Repository
	Shipments  domainShipment.Repository
	Trends     domainDashboard.TrendRepository
	Tracker    *analytics.Tracker
	Publisher  events.Publisher
	Hub        *realtime.Hub
	Limiter    *middleware.RateLimiter
}

func SetupRoutes(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order: recovery, request ID, logging, security headers, CORS, request size limit, rate limit
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.BodyLimitMiddleware(cfg.Server.MaxRequestBytes))
	if deps.Limiter != nil {
		router.Use(middleware.RateLimitMiddleware(deps.Limiter))
	}

	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()
		facilities, err := deps.Facilities.Count(ctx)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "message": "Store unavailable"})
			return
		}
		shipments, err := deps.Shipments.Count(ctx)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "message": "Store unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"message":    "Service is running",
			"facilities": facilities,
			"shipments":  shipments,
		})
	})

	supplierService := supplier.NewService(deps.Facilities)
	supplierHandler := handler.NewSupplierHandler(supplierService)

	shipmentService := shipment.NewService(deps.Shipments, deps.Facilities, deps.Tracker, deps.Publisher)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)

	dashboardService := dashboard.NewService(deps.Tracker, deps.Trends)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, deps.Hub)

	api := router.Group("/api")
	{
		supplierHandler.RegisterRoutes(api)
		shipmentHandler.RegisterRoutes(api)
		dashboardHandler.RegisterRoutes(api)
	}

	logger.Info("All routes initialized")
	return router
}
