package analytics

import (
	"time"

	"supply-chain-viz/internal/domain/dashboard"
	"supply-chain-viz/internal/domain/shipment"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculator derives dashboard KPIs from a shipment snapshot
type Calculator struct {
	trendMonths  int
	strictOnTime bool
}

func NewCalculator(trendMonths int, strictOnTime bool) *Calculator {
	if trendMonths < 1 {
		trendMonths = 1
	}
	return &Calculator{
		trendMonths:  trendMonths,
		strictOnTime: strictOnTime,
	}
}

// Compute is pure: the same snapshot and clock always give the same KPI.
// Costs are summed as decimals so the average does not drift with collection order.
func (c *Calculator) Compute(shipments []*shipment.Shipment, now time.Time) dashboard.KPI {
	kpi := dashboard.KPI{
		TotalShipments: len(shipments),
		ByStatus:       make(map[shipment.ShipmentStatus]int),
		ComputedAt:     now,
	}

	totalCost := decimal.Zero
	for _, s := range shipments {
		totalCost = totalCost.Add(decimal.NewFromFloat(s.Cost))
		kpi.ByStatus[s.Status]++

		switch {
		case s.IsOnTime(c.strictOnTime):
			kpi.OnTimeDeliveries++
		case s.Status.IsDelayed():
			kpi.DelayedCount++
		}
	}

	kpi.TotalCost = totalCost.InexactFloat64()
	if kpi.TotalShipments > 0 {
		count := decimal.NewFromInt(int64(kpi.TotalShipments))
		kpi.AverageCost = totalCost.Div(count).InexactFloat64()
		kpi.OnTimePercentage = decimal.NewFromInt(int64(kpi.OnTimeDeliveries)).
			Mul(hundred).
			Div(count).
			InexactFloat64()
	}

	kpi.ShipmentsOverTime = MonthlyTrend(shipments, now, c.trendMonths)

	return kpi
}

// TrendWindow returns zero-count buckets for the trailing months ending with now's month, oldest first.
func TrendWindow(now time.Time, months int) []dashboard.MonthlyCount {
	if months < 1 {
		return nil
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	window := make([]dashboard.MonthlyCount, months)
	for i := range window {
		month := start.AddDate(0, i, 0)
		window[i] = dashboard.MonthlyCount{Year: month.Year(), Month: month.Month()}
	}
	return window
}

// MonthlyTrend counts shipments per month of their trend date. Shipments dated
// outside the window, including future months, are left out.
func MonthlyTrend(shipments []*shipment.Shipment, now time.Time, months int) []dashboard.MonthlyCount {
	buckets := TrendWindow(now, months)

	index := make(map[dashboard.MonthKey]int, len(buckets))
	for i, b := range buckets {
		index[b.Key()] = i
	}

	for _, s := range shipments {
		date := s.TrendDate().In(now.Location())
		if i, ok := index[dashboard.MonthKey{Year: date.Year(), Month: date.Month()}]; ok {
			buckets[i].Count++
		}
	}

	return buckets
}

// MergeTrend adds stored historical volumes onto the live buckets. Points outside
// the live window are ignored.
func MergeTrend(live []dashboard.MonthlyCount, baseline []*dashboard.TrendPoint) []dashboard.MonthlyCount {
	merged := make([]dashboard.MonthlyCount, len(live))
	copy(merged, live)

	index := make(map[dashboard.MonthKey]int, len(merged))
	for i, b := range merged {
		index[b.Key()] = i
	}

	for _, p := range baseline {
		if i, ok := index[dashboard.MonthKey{Year: p.Year, Month: p.Month}]; ok {
			merged[i].Count += p.Count
		}
	}

	return merged
}
