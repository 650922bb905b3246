package handler

import (
	"net/http"

	"supply-chain-viz/internal/usecase/shipment"
	"supply-chain-viz/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.GET("", h.ListShipments)
		shipments.GET("/:id", h.GetShipment)
		shipments.POST("", h.CreateShipment)
		shipments.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	var req shipment.ShipmentFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, "Invalid query parameters", err)
		return
	}

	result, err := h.service.ListShipments(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	id, ok := parseIDParam(c, "shipment")
	if !ok {
		return
	}

	result, err := h.service.GetShipment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req shipment.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Invalid request body", err)
		return
	}

	result, err := h.service.CreateShipment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "shipment")
	if !ok {
		return
	}

	var req shipment.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Invalid request body", err)
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
