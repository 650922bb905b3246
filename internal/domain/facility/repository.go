package facility

import "context"

// Repository defines the storage operations for facilities
type Repository interface {
	Create(ctx context.Context, facility *Facility) error
	GetByID(ctx context.Context, id int64) (*Facility, error)
	List(ctx context.Context, filter *Filter) ([]*Facility, error)
	Count(ctx context.Context) (int, error)
}

// Filter narrows List results; a nil Type returns every facility
type Filter struct {
	Type *Type
}
