package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Filters is the explicit filter state for Search. Every field is
// optional: empty string or nil pointer means "not set". The struct
// round-trips losslessly through URL query parameters.
type Filters struct {
	Query    string
	Category string
	Level    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Rating   *float64
}

const (
	paramSearch   = "search"
	paramCategory = "category"
	paramLevel    = "level"
	paramMinPrice = "minPrice"
	paramMaxPrice = "maxPrice"
	paramRating   = "rating"
)

// ParseFilters reconstructs filter state from query parameters.
// Malformed numeric values are a validation error; unknown category or
// level values are not (they simply match nothing).
func ParseFilters(q url.Values) (Filters, error) {
	f := Filters{
		Query:    q.Get(paramSearch),
		Category: q.Get(paramCategory),
		Level:    q.Get(paramLevel),
	}

	if v := q.Get(paramMinPrice); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Filters{}, fmt.Errorf("%s: %q is not a number", paramMinPrice, v)
		}
		f.MinPrice = &d
	}
	if v := q.Get(paramMaxPrice); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Filters{}, fmt.Errorf("%s: %q is not a number", paramMaxPrice, v)
		}
		f.MaxPrice = &d
	}
	if v := q.Get(paramRating); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Filters{}, fmt.Errorf("%s: %q is not a number", paramRating, v)
		}
		f.Rating = &r
	}

	return f, nil
}

// Values encodes the filter state back into query parameters. Unset
// fields produce no parameter, so ParseFilters(f.Values()) == f.
func (f Filters) Values() url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set(paramSearch, f.Query)
	}
	if f.Category != "" {
		q.Set(paramCategory, f.Category)
	}
	if f.Level != "" {
		q.Set(paramLevel, f.Level)
	}
	if f.MinPrice != nil {
		q.Set(paramMinPrice, f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set(paramMaxPrice, f.MaxPrice.String())
	}
	if f.Rating != nil {
		q.Set(paramRating, strconv.FormatFloat(*f.Rating, 'f', -1, 64))
	}
	return q
}

// IsZero reports whether no query and no filter is set.
func (f Filters) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" &&
		f.Category == "" && f.Level == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && f.Rating == nil
}

// matches applies the AND-conjunction of the set filters to one course.
// The text query is handled separately in Search.
func (f Filters) matches(c Course) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Level != "" && string(c.Level) != f.Level {
		return false
	}
	if f.MinPrice != nil && c.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && c.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Rating != nil && c.Rating < *f.Rating {
		return false
	}
	return true
}
