package pagination

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter is offset/limit pagination applied after filtering and ordering.
// A zero Limit means DefaultLimit.
type Filter struct {
	Offset int
	Limit  int
}

// New builds a Filter from raw request values, applying defaults.
func New(offset, limit int32) (Filter, error) {
	f := Filter{Offset: int(offset), Limit: int(limit)}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if err := f.Validate(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// Validate checks limit is within 1..MaxLimit and offset is not negative.
func (f Filter) Validate() error {
	if f.Limit < 1 || f.Limit > MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxLimit)
	}
	if f.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

// Scope returns a gorm scope applying the filter. Out-of-range values are
// clamped rather than rejected, validation belongs to the transport layer.
func (f Filter) Scope() func(*gorm.DB) *gorm.DB {
	limit := f.Limit
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	offset := max(f.Offset, 0)

	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}
