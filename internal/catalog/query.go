package catalog

import (
	"context"
	"sort"
	"strings"
)

// DefaultTopN is the number of courses in the popular and newest views
// when the caller does not ask for a specific count.
const DefaultTopN = 8

// Engine derives filtered and sorted views from a Repository. All
// methods are pure reads: they never mutate the repository and never
// reorder it except where the view itself is a ranking.
type Engine struct {
	Repo Repository
}

func NewEngine(repo Repository) *Engine {
	return &Engine{Repo: repo}
}

// Featured returns courses flagged featured, in repository order.
func (e *Engine) Featured(ctx context.Context) ([]Course, error) {
	all, err := e.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Course, 0, len(all))
	for _, c := range all {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out, nil
}

// Popular returns the top n courses by enrollments, descending. The
// sort is stable so equal-enrollment courses keep repository order.
// n <= 0 means DefaultTopN.
func (e *Engine) Popular(ctx context.Context, n int) ([]Course, error) {
	all, err := e.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Enrollments > all[j].Enrollments
	})
	return topN(all, n), nil
}

// Newest returns the top n courses by creation time, newest first,
// with the same stability guarantee as Popular.
func (e *Engine) Newest(ctx context.Context, n int) ([]Course, error) {
	all, err := e.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return topN(all, n), nil
}

// Search matches the query text against title, description and
// instructor name (case-insensitive substring, any field), then
// applies the filter conjunction. A blank query matches everything.
// The result preserves repository order and is empty, not nil-error,
// when nothing matches.
func (e *Engine) Search(ctx context.Context, f Filters) ([]Course, error) {
	all, err := e.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Course, 0, len(all))
	for _, c := range all {
		if needle != "" && !matchesText(c, needle) {
			continue
		}
		if !f.matches(c) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Categories returns the distinct categories in first-seen order.
func (e *Engine) Categories(ctx context.Context) ([]string, error) {
	all, err := e.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(all, func(c Course) string { return c.Category }), nil
}

// Levels returns the distinct levels in first-seen order.
func (e *Engine) Levels(ctx context.Context) ([]string, error) {
	all, err := e.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(all, func(c Course) string { return string(c.Level) }), nil
}

func matchesText(c Course, needle string) bool {
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle) ||
		strings.Contains(strings.ToLower(c.Instructor.Name), needle)
}

func topN(courses []Course, n int) []Course {
	if n <= 0 {
		n = DefaultTopN
	}
	if n > len(courses) {
		n = len(courses)
	}
	return courses[:n]
}

func distinct(courses []Course, key func(Course) string) []string {
	seen := make(map[string]struct{}, len(courses))
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		k := key(c)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
