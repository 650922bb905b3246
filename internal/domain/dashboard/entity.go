package dashboard

import (
	"time"

	"supply-chain-viz/internal/domain/shipment"
)

// MonthlyCount is one bucket of a monthly trend series
type MonthlyCount struct {
	Year  int
	Month time.Month
	Count int
}

// Label is the short month name shown on chart axes ("Jan".."Dec").
func (m MonthlyCount) Label() string {
	return m.Month.String()[:3]
}

// Key identifies the bucket independently of its count.
func (m MonthlyCount) Key() MonthKey {
	return MonthKey{Year: m.Year, Month: m.Month}
}

type MonthKey struct {
	Year  int
	Month time.Month
}

// KPI is derived from the shipment collection and never stored
type KPI struct {
	TotalShipments    int
	TotalCost         float64
	AverageCost       float64
	OnTimeDeliveries  int
	OnTimePercentage  float64
	DelayedCount      int
	ByStatus          map[shipment.ShipmentStatus]int
	ShipmentsOverTime []MonthlyCount
	ComputedAt        time.Time
}

// TrendPoint is a stored historical volume for one month
type TrendPoint struct {
	ID    int64
	Year  int
	Month time.Month
	Count int
}
