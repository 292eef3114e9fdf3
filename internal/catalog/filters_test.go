package catalog_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LearnHub/internal/catalog"
)

func TestFilters_RoundTrip(t *testing.T) {
	f := catalog.Filters{
		Query:    "react hooks",
		Category: "Development",
		Level:    "All Levels",
		MinPrice: dec("10.50"),
		MaxPrice: dec("99.99"),
		Rating:   f64(4.5),
	}

	back, err := catalog.ParseFilters(f.Values())
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestFilters_RoundTripPartial(t *testing.T) {
	f := catalog.Filters{Query: "guitar", Rating: f64(4)}

	q := f.Values()
	assert.Equal(t, "guitar", q.Get("search"))
	assert.Equal(t, "4", q.Get("rating"))
	assert.False(t, q.Has("category"))
	assert.False(t, q.Has("minPrice"))

	back, err := catalog.ParseFilters(q)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestFilters_ParseEmpty(t *testing.T) {
	f, err := catalog.ParseFilters(url.Values{})
	require.NoError(t, err)
	assert.True(t, f.IsZero())
	assert.Empty(t, f.Values())
}

func TestFilters_ParseRejectsBadNumbers(t *testing.T) {
	for _, param := range []string{"minPrice", "maxPrice", "rating"} {
		q := url.Values{param: {"cheap"}}
		_, err := catalog.ParseFilters(q)
		assert.Error(t, err, param)
	}
}

func TestFilters_UnknownParamsIgnored(t *testing.T) {
	q := url.Values{"page": {"3"}, "search": {"piano"}}
	f, err := catalog.ParseFilters(q)
	require.NoError(t, err)
	assert.Equal(t, "piano", f.Query)
}
