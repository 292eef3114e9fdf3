package catalog

import (
	"context"
	"sync"
)

// MemRepo holds the course collection in memory. The slice preserves
// insertion order; the index map serves Get.
type MemRepo struct {
	mu      sync.RWMutex
	courses []Course
	byID    map[string]int
}

// NewMemRepo seeds the repository with the fixture dataset.
func NewMemRepo() *MemRepo {
	return NewMemRepoWith(fixtureCourses())
}

// NewMemRepoWith builds a repository over the given courses, keeping
// their order. Later duplicates of an id are dropped.
func NewMemRepoWith(courses []Course) *MemRepo {
	r := &MemRepo{byID: make(map[string]int, len(courses))}
	for _, c := range courses {
		if _, dup := r.byID[c.ID]; dup {
			continue
		}
		r.byID[c.ID] = len(r.courses)
		r.courses = append(r.courses, c)
	}
	return r
}

func (r *MemRepo) Ping(ctx context.Context) error { return nil }

func (r *MemRepo) All(ctx context.Context) ([]Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *MemRepo) Get(ctx context.Context, id string) (Course, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return Course{}, false, nil
	}
	return r.courses[i], true, nil
}
