package shipment

import (
	"context"
	"errors"
	"testing"
	"time"

	"supply-chain-viz/internal/analytics"
	domainFacility "supply-chain-viz/internal/domain/facility"
	domainShipment "supply-chain-viz/internal/domain/shipment"
	"supply-chain-viz/internal/events"
	"supply-chain-viz/internal/events/mocks"
	"supply-chain-viz/internal/infrastructure/memory"
	"supply-chain-viz/internal/usecase/supplier"
	appErrors "supply-chain-viz/pkg/errors"
	"supply-chain-viz/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc        *Service
	shipments  *memory.ShipmentRepository
	facilities *memory.FacilityRepository
	tracker    *analytics.Tracker
	publisher  *mocks.MockPublisher
	warehouse  *domainFacility.Facility
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	shipments := memory.NewShipmentRepository()
	facilities := memory.NewFacilityRepository()
	clock := func() time.Time { return testNow }
	tracker := analytics.NewTracker(shipments, analytics.NewCalculator(10, true), clock)
	publisher := mocks.NewMockPublisher(ctrl)

	warehouse := &domainFacility.Facility{
		Name:     "Warehouse Berlin",
		Type:     domainFacility.TypeWarehouse,
		Location: domainFacility.Location{Lat: 52.52, Lng: 13.405},
	}
	require.NoError(t, facilities.Create(context.Background(), warehouse))

	svc := NewService(shipments, facilities, tracker, publisher)
	svc.now = clock

	return &fixture{
		svc:        svc,
		shipments:  shipments,
		facilities: facilities,
		tracker:    tracker,
		publisher:  publisher,
		warehouse:  warehouse,
	}
}

func flexFloat(v float64) *utils.FlexFloat {
	f := utils.FlexFloat(v)
	return &f
}

func flexInt(v int) *utils.FlexInt {
	i := utils.FlexInt(v)
	return &i
}

func validRequest(warehouseID int64) *CreateShipmentRequest {
	eta := testNow.Add(72 * time.Hour)
	return &CreateShipmentRequest{
		ProductID:     "PRD-1",
		ProductName:   "Widgets",
		Source:        &supplier.LocationRequest{Lat: flexFloat(59.33), Lng: flexFloat(18.07)},
		DestinationID: flexInt(int(warehouseID)),
		Cost:          flexFloat(4.2),
		ETA:           &eta,
	}
}

func TestCreateShipment_StoresRefreshesAndPublishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var published *events.ShipmentEvent
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *events.ShipmentEvent) error {
			published = e
			return nil
		})

	before, err := f.tracker.Snapshot(ctx)
	require.NoError(t, err)

	resp, err := f.svc.CreateShipment(ctx, validRequest(f.warehouse.ID))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "SHP-1001", resp.Code)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 52.52, resp.Destination.Lat)
	require.NotNil(t, resp.DestinationID)
	assert.Equal(t, f.warehouse.ID, *resp.DestinationID)
	assert.Nil(t, resp.SourceID)
	assert.Equal(t, testNow, resp.CreatedAt)

	after, err := f.tracker.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalShipments+1, after.TotalShipments)

	require.NotNil(t, published)
	assert.Equal(t, events.TypeShipmentCreated, published.Type)
	assert.Equal(t, "SHP-1001", published.Code)
}

func TestCreateShipment_PublishFailureIsNotReturned(t *testing.T) {
	f := newFixture(t)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	resp, err := f.svc.CreateShipment(context.Background(), validRequest(f.warehouse.ID))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestCreateShipment_ValidationLeavesStoreUnchanged(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *CreateShipmentRequest)
		wantField string
	}{
		{name: "missing_product", mutate: func(r *CreateShipmentRequest) { r.ProductID = "" }, wantField: "productId"},
		{name: "missing_cost", mutate: func(r *CreateShipmentRequest) { r.Cost = nil }, wantField: "cost"},
		{name: "negative_cost", mutate: func(r *CreateShipmentRequest) { r.Cost = flexFloat(-1) }, wantField: "cost"},
		{name: "cost_over_bound", mutate: func(r *CreateShipmentRequest) { r.Cost = flexFloat(1e12) }, wantField: "cost"},
		{name: "product_only_markup", mutate: func(r *CreateShipmentRequest) { r.ProductID = "<b></b>" }, wantField: "productId"},
		{name: "product_only_spaces", mutate: func(r *CreateShipmentRequest) { r.ProductID = "   " }, wantField: "productId"},
		{name: "missing_eta", mutate: func(r *CreateShipmentRequest) { r.ETA = nil }, wantField: "eta"},
		{name: "missing_source", mutate: func(r *CreateShipmentRequest) { r.Source = nil }, wantField: "sourceId"},
		{name: "bad_status", mutate: func(r *CreateShipmentRequest) { r.Status = "lost" }, wantField: "status"},
		{name: "bad_latitude", mutate: func(r *CreateShipmentRequest) { r.Source.Lat = flexFloat(91) }, wantField: "source.lat"},
		{name: "unknown_facility", mutate: func(r *CreateShipmentRequest) { r.DestinationID = flexInt(999) }, wantField: "destinationId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest(f.warehouse.ID)
			tt.mutate(req)

			_, err := f.svc.CreateShipment(context.Background(), req)
			require.Error(t, err)
			assert.True(t, appErrors.IsCode(err, appErrors.CodeValidation))

			var appErr *appErrors.AppError
			require.ErrorAs(t, err, &appErr)
			fields := make([]string, 0)
			for _, d := range utils.ValidationDetails(appErr.Err) {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.wantField)

			count, err := f.shipments.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestCreateShipment_DuplicateCodeConflicts(t *testing.T) {
	f := newFixture(t)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	req := validRequest(f.warehouse.ID)
	req.Code = "shp-2000"
	resp, err := f.svc.CreateShipment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SHP-2000", resp.Code)

	_, err = f.svc.CreateShipment(context.Background(), validRequest(f.warehouse.ID))
	require.NoError(t, err)

	dup := validRequest(f.warehouse.ID)
	dup.Code = "SHP-2000"
	_, err = f.svc.CreateShipment(context.Background(), dup)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeConflict))
}

func TestCreateShipment_NormalizesStatusAlias(t *testing.T) {
	f := newFixture(t)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	req := validRequest(f.warehouse.ID)
	req.Status = "In-Transit"
	resp, err := f.svc.CreateShipment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "in_transit", resp.Status)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	created, err := f.svc.CreateShipment(ctx, validRequest(f.warehouse.ID))
	require.NoError(t, err)

	var event *events.ShipmentEvent
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *events.ShipmentEvent) error {
			event = e
			return nil
		})

	updated, err := f.svc.UpdateStatus(ctx, created.ID, &UpdateStatusRequest{Status: "delivered"})
	require.NoError(t, err)

	assert.Equal(t, "delivered", updated.Status)
	require.NotNil(t, updated.ActualDeliveryAt)
	assert.Equal(t, testNow, *updated.ActualDeliveryAt)

	kpi, err := f.tracker.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kpi.OnTimeDeliveries, "delivered before ETA counts as on time")

	require.NotNil(t, event)
	assert.Equal(t, events.TypeShipmentStatusChanged, event.Type)
	require.NotNil(t, event.PreviousStatus)
	assert.Equal(t, domainShipment.StatusPending, *event.PreviousStatus)
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateStatus(ctx, 1, &UpdateStatusRequest{Status: "teleported"})
	assert.True(t, appErrors.IsCode(err, appErrors.CodeValidation))

	_, err = f.svc.UpdateStatus(ctx, 404, &UpdateStatusRequest{Status: "delayed"})
	assert.ErrorIs(t, err, domainShipment.ErrShipmentNotFound)
}

func TestListShipments_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first := validRequest(f.warehouse.ID)
	first.Status = "delayed"
	_, err := f.svc.CreateShipment(ctx, first)
	require.NoError(t, err)
	_, err = f.svc.CreateShipment(ctx, validRequest(f.warehouse.ID))
	require.NoError(t, err)

	delayed, err := f.svc.ListShipments(ctx, &ShipmentFilterRequest{Status: "delayed"})
	require.NoError(t, err)
	require.Len(t, delayed, 1)
	assert.True(t, delayed[0].IsDelayed)

	byCode, err := f.svc.ListShipments(ctx, &ShipmentFilterRequest{Code: "shp-1002"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, int64(2), byCode[0].ID)

	_, err = f.svc.ListShipments(ctx, &ShipmentFilterRequest{Status: "bogus"})
	assert.True(t, appErrors.IsCode(err, appErrors.CodeValidation))
}
