package handler

import (
	"net/http"

	"supply-chain-viz/internal/logger"
	"supply-chain-viz/internal/middleware"
	"supply-chain-viz/internal/realtime"
	"supply-chain-viz/internal/usecase/dashboard"
	"supply-chain-viz/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *dashboard.Service
	hub     *realtime.Hub
}

func NewDashboardHandler(service *dashboard.Service, hub *realtime.Hub) *DashboardHandler {
	return &DashboardHandler{service: service, hub: hub}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dash := router.Group("/dashboard")
	{
		dash.GET("/kpi", h.GetKPI)
		dash.GET("/shipments-over-time", h.GetShipmentsOverTime)
		dash.GET("/shipment-trends", h.GetShipmentTrends)
	}

	if h.hub != nil {
		router.GET("/ws/kpi", h.StreamKPI)
	}
}

func (h *DashboardHandler) GetKPI(c *gin.Context) {
	result, err := h.service.GetKPI(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *DashboardHandler) GetShipmentsOverTime(c *gin.Context) {
	result, err := h.service.GetShipmentsOverTime(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *DashboardHandler) GetShipmentTrends(c *gin.Context) {
	result, err := h.service.GetShipmentTrends(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// StreamKPI upgrades to a WebSocket that receives the KPI now and after every change.
func (h *DashboardHandler) StreamKPI(c *gin.Context) {
	initial, err := h.service.GetKPI(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.hub.Serve(c.Writer, c.Request, initial); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Warn("KPI stream ended with error", zap.Error(err))
	}
}
