package catalog_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LearnHub/internal/catalog"
)

func fixtureEngine() *catalog.Engine {
	return catalog.NewEngine(catalog.NewMemRepo())
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func f64(v float64) *float64 { return &v }

func ids(courses []catalog.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func TestSearch_EmptyQueryReturnsAllInOrder(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	all, err := e.Repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 12)

	got, err := e.Search(ctx, catalog.Filters{})
	require.NoError(t, err)
	assert.Equal(t, ids(all), ids(got))

	// Whitespace-only query behaves like no query.
	got, err = e.Search(ctx, catalog.Filters{Query: "   "})
	require.NoError(t, err)
	assert.Equal(t, ids(all), ids(got))
}

func TestSearch_TextMatch(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	// Case-insensitive substring over title, description and
	// instructor name; a course matches when ANY field contains it.
	got, err := e.Search(ctx, catalog.Filters{Query: "PYTHON"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "7"}, ids(got))

	got, err = e.Search(ctx, catalog.Filters{Query: "sarah johnson"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(got))

	got, err = e.Search(ctx, catalog.Filters{Query: "no such course anywhere"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_TextMatchIffSubstring(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	all, err := e.Repo.All(ctx)
	require.NoError(t, err)

	query := "design"
	got, err := e.Search(ctx, catalog.Filters{Query: query})
	require.NoError(t, err)

	matched := make(map[string]bool, len(got))
	for _, c := range got {
		matched[c.ID] = true
	}

	for _, c := range all {
		want := strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Description), query) ||
			strings.Contains(strings.ToLower(c.Instructor.Name), query)
		assert.Equal(t, want, matched[c.ID], "course %s", c.ID)
	}
}

func TestSearch_Filters(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	t.Run("category exact match", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{Category: "Marketing"})
		require.NoError(t, err)
		assert.Equal(t, []string{"4", "12"}, ids(got))
	})

	t.Run("level exact match", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{Level: "Beginner"})
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "7", "12"}, ids(got))
	})

	t.Run("unknown category yields empty, not error", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{Category: "Cooking"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{MinPrice: dec("99.99"), MaxPrice: dec("99.99")})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "11"}, ids(got))
	})

	t.Run("minPrice above maxPrice yields empty", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{MinPrice: dec("80"), MaxPrice: dec("70")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("minPrice beyond the whole catalog yields empty", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{MinPrice: dec("1000")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rating threshold is inclusive", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{Rating: f64(4.9)})
		require.NoError(t, err)
		assert.Equal(t, []string{"5", "10"}, ids(got))
	})

	t.Run("conjunction of query and filters", func(t *testing.T) {
		got, err := e.Search(ctx, catalog.Filters{
			Query:    "bootcamp",
			Category: "Development",
			Level:    "All Levels",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "10"}, ids(got))
	})
}

func TestSearch_PreservesRepositoryOrder(t *testing.T) {
	e := fixtureEngine()

	got, err := e.Search(context.Background(), catalog.Filters{Category: "Development"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "7", "10", "11"}, ids(got))
}

func TestFeatured(t *testing.T) {
	e := fixtureEngine()

	got, err := e.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "5", "7", "8", "10", "11"}, ids(got))
}

func TestPopular(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	got, err := e.Popular(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, catalog.DefaultTopN)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Enrollments, got[i].Enrollments)
	}
	assert.Equal(t, "10", got[0].ID)

	got, err = e.Popular(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, got, 12)
}

func TestPopular_StableOnTies(t *testing.T) {
	mk := func(id string, enrollments int) catalog.Course {
		return catalog.Course{
			ID:          id,
			Price:       decimal.New(10, 0),
			Enrollments: enrollments,
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	repo := catalog.NewMemRepoWith([]catalog.Course{
		mk("a", 100), mk("b", 500), mk("c", 100), mk("d", 500),
	})
	e := catalog.NewEngine(repo)

	got, err := e.Popular(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(got))
}

func TestNewest(t *testing.T) {
	e := fixtureEngine()

	got, err := e.Newest(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "8", "7"}, ids(got))
}

func TestCategoriesAndLevels(t *testing.T) {
	e := fixtureEngine()
	ctx := context.Background()

	cats, err := e.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Development", "Data Science", "Business", "Marketing",
		"Photography", "Design", "Music",
	}, cats)

	levels, err := e.Levels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All Levels", "Intermediate", "Beginner"}, levels)
}

func TestRepo_Get(t *testing.T) {
	repo := catalog.NewMemRepo()
	ctx := context.Background()

	c, ok, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Complete Web Development Bootcamp", c.Title)
	require.NotNil(t, c.DiscountPrice)
	assert.True(t, c.DiscountPrice.LessThan(c.Price))

	_, ok, err = repo.Get(ctx, "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEffectivePrice(t *testing.T) {
	withDiscount := catalog.Course{Price: decimal.RequireFromString("100"), DiscountPrice: dec("60")}
	assert.True(t, withDiscount.EffectivePrice().Equal(decimal.RequireFromString("60")))

	fullPrice := catalog.Course{Price: decimal.RequireFromString("50")}
	assert.True(t, fullPrice.EffectivePrice().Equal(decimal.RequireFromString("50")))
}
