package dashboard

import "context"

// TrendRepository stores historical monthly volumes that predate the live shipment data
type TrendRepository interface {
	Add(ctx context.Context, point *TrendPoint) error
	List(ctx context.Context) ([]*TrendPoint, error)
}
