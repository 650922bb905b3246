package dashboard

import (
	"context"

	"supply-chain-viz/internal/analytics"
	domainDashboard "supply-chain-viz/internal/domain/dashboard"
	appErrors "supply-chain-viz/pkg/errors"
)

// Service serves the derived dashboard metrics
type Service struct {
	tracker   *analytics.Tracker
	trendRepo domainDashboard.TrendRepository
}

func NewService(tracker *analytics.Tracker, trendRepo domainDashboard.TrendRepository) *Service {
	return &Service{
		tracker:   tracker,
		trendRepo: trendRepo,
	}
}

func (s *Service) GetKPI(ctx context.Context) (*KPIResponse, error) {
	kpi, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ToKPIResponse(kpi), nil
}

// GetShipmentsOverTime returns live monthly counts for the trailing window.
func (s *Service) GetShipmentsOverTime(ctx context.Context) ([]MonthlyCountResponse, error) {
	kpi, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ToMonthlyCountResponses(kpi.ShipmentsOverTime), nil
}

// GetShipmentTrends overlays live counts on the stored historical baseline.
func (s *Service) GetShipmentTrends(ctx context.Context) ([]MonthlyCountResponse, error) {
	kpi, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	baseline, err := s.trendRepo.List(ctx)
	if err != nil {
		return nil, appErrors.NewInternalError("Failed to load shipment trends", err)
	}

	return ToMonthlyCountResponses(analytics.MergeTrend(kpi.ShipmentsOverTime, baseline)), nil
}

func (s *Service) snapshot(ctx context.Context) (domainDashboard.KPI, error) {
	kpi, err := s.tracker.Snapshot(ctx)
	if err != nil {
		return domainDashboard.KPI{}, appErrors.NewInternalError("Failed to compute dashboard metrics", err)
	}
	return kpi, nil
}
