package handler

import (
	"net/http"

	"supply-chain-viz/internal/usecase/supplier"
	"supply-chain-viz/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	service *supplier.Service
}

func NewSupplierHandler(service *supplier.Service) *SupplierHandler {
	return &SupplierHandler{service: service}
}

func (h *SupplierHandler) RegisterRoutes(router *gin.RouterGroup) {
	suppliers := router.Group("/suppliers")
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.POST("", h.CreateSupplier)
	}

	router.GET("/facilities", h.ListFacilities)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	var req supplier.SupplierFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, "Invalid query parameters", err)
		return
	}

	result, err := h.service.ListSuppliers(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := parseIDParam(c, "supplier")
	if !ok {
		return
	}

	result, err := h.service.GetSupplier(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req supplier.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Invalid request body", err)
		return
	}

	result, err := h.service.CreateSupplier(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// ListFacilities serves the map markers for every facility.
func (h *SupplierHandler) ListFacilities(c *gin.Context) {
	result, err := h.service.ListFacilities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
