package facility

import (
	"strings"
	"time"
)

// Type is the category a facility appears under on the map
type Type string

const (
	TypeSupplier  Type = "supplier"
	TypeWarehouse Type = "warehouse"
	TypeStore     Type = "store"
)

const (
	DefaultRating    = 5
	DefaultCostIndex = 1.0
)

// Types lists the categories in map legend order
var Types = []Type{TypeSupplier, TypeWarehouse, TypeStore}

func (t Type) IsValid() bool {
	switch t {
	case TypeSupplier, TypeWarehouse, TypeStore:
		return true
	}
	return false
}

// ParseType accepts any casing and surrounding whitespace.
func ParseType(raw string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.IsValid()
}

// Location is a WGS84 coordinate pair
type Location struct {
	Lat float64
	Lng float64
}

// Facility is a supplier, warehouse or store that shipments move between
type Facility struct {
	ID        int64
	Name      string
	Location  Location
	Type      Type
	Rating    int
	CostIndex float64
	CreatedAt time.Time
}
