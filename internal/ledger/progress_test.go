package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"LearnHub/internal/ledger"
)

func TestToggleLesson(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	assert.Empty(t, l.CompletedLessons(ctx, "1"))

	assert.True(t, l.ToggleLesson(ctx, "1", "l1"))
	assert.True(t, l.ToggleLesson(ctx, "1", "l3"))
	assert.Equal(t, []string{"l1", "l3"}, l.CompletedLessons(ctx, "1"))

	// Second toggle undoes the first.
	assert.False(t, l.ToggleLesson(ctx, "1", "l1"))
	assert.Equal(t, []string{"l3"}, l.CompletedLessons(ctx, "1"))

	// Progress is tracked per course.
	assert.Empty(t, l.CompletedLessons(ctx, "2"))
}

func TestProgress_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemStorage()

	l := ledger.Open(ctx, store, "u_1", zap.NewNop())
	l.ToggleLesson(ctx, "3", "l1-1")
	l.ToggleLesson(ctx, "3", "l1-2")

	fresh := ledger.Open(ctx, store, "u_1", zap.NewNop())
	assert.Equal(t, []string{"l1-1", "l1-2"}, fresh.CompletedLessons(ctx, "3"))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, ledger.ProgressPercent(0, 0))
	assert.Equal(t, 0.0, ledger.ProgressPercent(3, 0))
	assert.Equal(t, 50.0, ledger.ProgressPercent(1, 2))
	assert.Equal(t, 100.0, ledger.ProgressPercent(4, 4))
	assert.InDelta(t, 33.33, ledger.ProgressPercent(1, 3), 0.01)
}
