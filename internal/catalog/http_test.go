package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"LearnHub/internal/catalog"
)

func newCatalogTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &catalog.Server{
		Engine: catalog.NewEngine(catalog.NewMemRepo()),
		Log:    zap.NewNop(),
	}
	h := catalog.NewHandler(s, catalog.HTTPDeps{Log: zap.NewNop(), Service: "catalog"})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func TestHTTP_SearchWithQueryString(t *testing.T) {
	ts := newCatalogTS(t)

	var courses []catalog.Course
	getJSON(t, ts.URL+"/courses?search=python&level=Beginner", http.StatusOK, &courses)
	assert.Equal(t, []string{"7"}, ids(courses))
}

func TestHTTP_SearchNoMatchesIsEmptyArray(t *testing.T) {
	ts := newCatalogTS(t)

	var courses []catalog.Course
	getJSON(t, ts.URL+"/courses?minPrice=1000", http.StatusOK, &courses)
	assert.Empty(t, courses)
}

func TestHTTP_SearchBadFilterIs400(t *testing.T) {
	ts := newCatalogTS(t)
	getJSON(t, ts.URL+"/courses?minPrice=abc", http.StatusBadRequest, nil)
}

func TestHTTP_GetCourse(t *testing.T) {
	ts := newCatalogTS(t)

	var c catalog.Course
	getJSON(t, ts.URL+"/courses/3", http.StatusOK, &c)
	assert.Equal(t, "The Complete Financial Analyst Course", c.Title)
	assert.Equal(t, catalog.LevelBeginner, c.Level)
	require.Len(t, c.Curriculum.Sections, 1)
	assert.Equal(t, 2, c.Curriculum.LessonCount())
}

func TestHTTP_GetCourseNotFound(t *testing.T) {
	ts := newCatalogTS(t)
	getJSON(t, ts.URL+"/courses/999", http.StatusNotFound, nil)
}

func TestHTTP_PopularAndNew(t *testing.T) {
	ts := newCatalogTS(t)

	var popular []catalog.Course
	getJSON(t, ts.URL+"/courses/popular?limit=2", http.StatusOK, &popular)
	assert.Equal(t, []string{"10", "5"}, ids(popular))

	var newest []catalog.Course
	getJSON(t, ts.URL+"/courses/new?limit=2", http.StatusOK, &newest)
	assert.Equal(t, []string{"10", "8"}, ids(newest))
}

func TestHTTP_Meta(t *testing.T) {
	ts := newCatalogTS(t)

	var cats []string
	getJSON(t, ts.URL+"/courses/meta/categories", http.StatusOK, &cats)
	assert.Contains(t, cats, "Photography")

	var levels []string
	getJSON(t, ts.URL+"/courses/meta/levels", http.StatusOK, &levels)
	assert.Contains(t, levels, "All Levels")
}
