package memory

import (
	"context"
	"fmt"
	"time"

	"supply-chain-viz/internal/domain/dashboard"
	"supply-chain-viz/internal/domain/facility"
	"supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/logger"

	"go.uber.org/zap"
)

type sampleFacility struct {
	name     string
	lat, lng float64
	kind     facility.Type
}

var sampleFacilities = []sampleFacility{
	{"Supplier A", 59.3293, 18.0686, facility.TypeSupplier}, // Stockholm
	{"Supplier B", 55.6761, 12.5683, facility.TypeSupplier}, // Copenhagen
	{"Supplier C", 51.5074, -0.1278, facility.TypeSupplier}, // London
	{"Warehouse Berlin", 52.5200, 13.4050, facility.TypeWarehouse},
	{"Warehouse Paris", 48.8566, 2.3522, facility.TypeWarehouse},
	{"Warehouse Warsaw", 52.2297, 21.0122, facility.TypeWarehouse},
	{"Store Madrid", 40.4168, -3.7038, facility.TypeStore},
	{"Store Rome", 41.9028, 12.4964, facility.TypeStore},
	{"Store Vienna", 48.2082, 16.3738, facility.TypeStore},
}

type sampleShipment struct {
	code        string
	productID   string
	productName string
	source      string
	destination string
	cost        float64
	departed    time.Duration // relative to seed time
	eta         time.Duration
	status      shipment.ShipmentStatus
}

var sampleShipments = []sampleShipment{
	{"SHP-1001", "PRD-EC-01", "Electronic Components", "Supplier A", "Warehouse Berlin", 3.45, -72 * time.Hour, 5 * 24 * time.Hour, shipment.StatusOnTime},
	{"SHP-1002", "PRD-RM-07", "Raw Materials", "Warehouse Warsaw", "Warehouse Paris", 5.21, -24 * time.Hour, 8 * 24 * time.Hour, shipment.StatusInTransit},
	{"SHP-1003", "PRD-FG-12", "Finished Goods", "Warehouse Berlin", "Store Madrid", 4.87, -6 * 24 * time.Hour, -2 * 24 * time.Hour, shipment.StatusDelayed},
}

// sampleVolumes is the historical baseline cycled over the trend window, oldest first.
var sampleVolumes = []int{65, 59, 80, 81, 56, 55, 70, 80, 90, 88}

// Seed loads the demo data set the dashboard ships with.
// Repositories that already hold facilities or shipments are left untouched.
func Seed(
	ctx context.Context,
	facilities facility.Repository,
	shipments shipment.Repository,
	trends dashboard.TrendRepository,
	now time.Time,
	trendMonths int,
) error {
	facilityCount, err := facilities.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count facilities: %w", err)
	}
	shipmentCount, err := shipments.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count shipments: %w", err)
	}
	if facilityCount > 0 || shipmentCount > 0 {
		logger.Info("Sample data skipped",
			zap.String("event", "sample_data_skipped"),
			zap.Int("facilities", facilityCount),
			zap.Int("shipments", shipmentCount),
		)
		return nil
	}

	byName := make(map[string]*facility.Facility, len(sampleFacilities))
	for _, sf := range sampleFacilities {
		f := &facility.Facility{
			Name:      sf.name,
			Location:  facility.Location{Lat: sf.lat, Lng: sf.lng},
			Type:      sf.kind,
			Rating:    facility.DefaultRating,
			CostIndex: facility.DefaultCostIndex,
			CreatedAt: now,
		}
		if err := facilities.Create(ctx, f); err != nil {
			return fmt.Errorf("failed to seed facility %s: %w", sf.name, err)
		}
		byName[sf.name] = f
	}

	for _, ss := range sampleShipments {
		src, dst := byName[ss.source], byName[ss.destination]
		departed := now.Add(ss.departed)
		s := &shipment.Shipment{
			Code:          ss.code,
			ProductID:     ss.productID,
			ProductName:   ss.productName,
			SourceID:      &src.ID,
			DestinationID: &dst.ID,
			Source:        src.Location,
			Destination:   dst.Location,
			Cost:          ss.cost,
			ETA:           now.Add(ss.eta),
			DepartedAt:    &departed,
			Status:        ss.status,
			CreatedAt:     now,
		}
		if err := shipments.Create(ctx, s); err != nil {
			return fmt.Errorf("failed to seed shipment %s: %w", ss.code, err)
		}
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(trendMonths - 1), 0)
	for i := 0; i < trendMonths; i++ {
		month := start.AddDate(0, i, 0)
		point := &dashboard.TrendPoint{
			Year:  month.Year(),
			Month: month.Month(),
			Count: sampleVolumes[i%len(sampleVolumes)],
		}
		if err := trends.Add(ctx, point); err != nil {
			return fmt.Errorf("failed to seed trend point: %w", err)
		}
	}

	logger.Info("Sample data seeded",
		zap.Int("facilities", len(sampleFacilities)),
		zap.Int("shipments", len(sampleShipments)),
		zap.Int("trend_months", trendMonths),
		zap.String("event", "sample_data_seeded"),
	)

	return nil
}
