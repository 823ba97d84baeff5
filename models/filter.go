package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// DateRange bounds statement dates, inclusive on both ends.
type DateRange struct {
	Start *Date
	End   *Date
}

// ValueRange bounds a numeric field, inclusive on both ends.
type ValueRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Filter narrows the statements of one symbol. A range only constrains its
// dimension when both of its bounds are set.
type Filter struct {
	Dates DateRange
	// Values maps numeric field keys, e.g. "revenue", to their ranges.
	Values map[string]ValueRange
	// SortBy is a field key; statements are returned most recent first when
	// it is empty.
	SortBy string
	// SortOrder is "asc" (the default) or "desc".
	SortOrder string
}

// Filter returns the statements of symbol matching f.
func (r *Repository[T]) Filter(ctx context.Context, symbol string, f Filter) ([]T, error) {
	query := r.db.WithContext(ctx).Where("symbol = ?", symbol)

	if f.Dates.Start != nil && f.Dates.End != nil {
		query = query.Where(clause.And(
			clause.Gte{Column: clause.Column{Name: "date"}, Value: *f.Dates.Start},
			clause.Lte{Column: clause.Column{Name: "date"}, Value: *f.Dates.End},
		))
	}

	for key, rng := range f.Values {
		column, err := r.descriptor.NumberColumn(key)
		if err != nil {
			return nil, err
		}

		if rng.Min == nil || rng.Max == nil {
			continue
		}

		query = query.Where(clause.And(
			clause.Gte{Column: clause.Column{Name: column}, Value: *rng.Min},
			clause.Lte{Column: clause.Column{Name: column}, Value: *rng.Max},
		))
	}

	column, err := r.descriptor.SortColumn(f.SortBy)
	if err != nil {
		return nil, err
	}

	var desc bool
	switch strings.ToLower(f.SortOrder) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSortOrder, f.SortOrder)
	}

	if column == "" {
		column, desc = "date", true
	}

	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})

	records := []T{}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
