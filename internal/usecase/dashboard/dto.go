package dashboard

import (
	"time"

	domainDashboard "supply-chain-viz/internal/domain/dashboard"
	domainShipment "supply-chain-viz/internal/domain/shipment"
)

// Response DTOs
type MonthlyCountResponse struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

type KPIResponse struct {
	TotalShipments    int                    `json:"totalShipments"`
	AvgCost           float64                `json:"avgCost"`
	TotalCost         float64                `json:"totalCost"`
	OnTimePercentage  float64                `json:"onTimePercentage"`
	OnTimeDeliveries  int                    `json:"onTimeDeliveries"`
	DelayedCount      int                    `json:"delayedCount"`
	ByStatus          map[string]int         `json:"byStatus"`
	ShipmentsOverTime []MonthlyCountResponse `json:"shipmentsOverTime"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

// Conversion functions
func ToMonthlyCountResponses(counts []domainDashboard.MonthlyCount) []MonthlyCountResponse {
	result := make([]MonthlyCountResponse, len(counts))
	for i, c := range counts {
		result[i] = MonthlyCountResponse{
			Month: c.Label(),
			Year:  c.Year,
			Count: c.Count,
		}
	}
	return result
}

// ToKPIResponse lists every known status in byStatus, zero counts included.
func ToKPIResponse(kpi domainDashboard.KPI) *KPIResponse {
	byStatus := make(map[string]int, len(domainShipment.Statuses))
	for _, status := range domainShipment.Statuses {
		byStatus[string(status)] = kpi.ByStatus[status]
	}

	return &KPIResponse{
		TotalShipments:    kpi.TotalShipments,
		AvgCost:           kpi.AverageCost,
		TotalCost:         kpi.TotalCost,
		OnTimePercentage:  kpi.OnTimePercentage,
		OnTimeDeliveries:  kpi.OnTimeDeliveries,
		DelayedCount:      kpi.DelayedCount,
		ByStatus:          byStatus,
		ShipmentsOverTime: ToMonthlyCountResponses(kpi.ShipmentsOverTime),
		UpdatedAt:         kpi.ComputedAt,
	}
}
