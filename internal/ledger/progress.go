package ledger

import "context"

// CompletedLessons returns the ordered completed-lesson ids for one
// course. Missing or corrupt entries read as empty.
func (l *Ledger) CompletedLessons(ctx context.Context, courseID string) []string {
	return l.loadIDs(ctx, keyProgressPrefix+courseID)
}

// ToggleLesson flips a lesson's completed state and reports the new
// state. Progress lives directly in the mirror: unlike the membership
// sets it is read on demand, not held in memory, because each course
// has its own entry.
func (l *Ledger) ToggleLesson(ctx context.Context, courseID, lessonID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := keyProgressPrefix + courseID
	done := l.loadIDs(ctx, key)

	if contains(done, lessonID) {
		done = remove(done, lessonID)
	} else {
		done = append(done, lessonID)
	}
	l.persist(ctx, key, done)
	return contains(done, lessonID)
}

// ProgressPercent is completed/total as a percentage, 0 for an empty
// curriculum.
func ProgressPercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
