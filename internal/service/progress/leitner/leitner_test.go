package leitner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabloom/progress-engine/internal/domain"
)

func TestIntervals_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		iv      Intervals
		wantErr bool
	}{
		{"default table", DefaultIntervals(), false},
		{"custom increasing", Intervals{1, 2, 3, 4, 5}, false},
		{"zero interval", Intervals{0, 3, 7, 14, 30}, true},
		{"plateau", Intervals{1, 3, 3, 14, 30}, true},
		{"decreasing", Intervals{1, 3, 7, 30, 14}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.iv.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordOutcome_Transitions(t *testing.T) {
	t.Parallel()

	iv := DefaultIntervals()
	today := domain.NewDay(2025, 3, 10)
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		prevBox int // 0 = no prior record
		correct bool
		wantBox int
		wantDue domain.Day
	}{
		{"first review wrong starts box 1", 0, false, 1, today.AddDays(1)},
		{"first review correct promotes to box 2", 0, true, 2, today.AddDays(3)},
		{"promotion from box 2", 2, true, 3, today.AddDays(7)},
		{"promotion from box 4", 4, true, 5, today.AddDays(30)},
		{"box 5 stays capped", 5, true, 5, today.AddDays(30)},
		{"wrong demotes box 5 to box 1", 5, false, 1, today.AddDays(1)},
		{"wrong demotes box 2 to box 1", 2, false, 1, today.AddDays(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var prev *domain.ItemProgress
			if tt.prevBox > 0 {
				prev = &domain.ItemProgress{ItemID: "w1", Box: tt.prevBox}
			}

			got := RecordOutcome(prev, "w1", tt.correct, today, now, iv)

			assert.Equal(t, tt.wantBox, got.Box)
			assert.True(t, got.DueAt.Equal(tt.wantDue), "due %s, want %s", got.DueAt, tt.wantDue)
			assert.Equal(t, now, got.LastReviewedAt)
			assert.GreaterOrEqual(t, got.Box, domain.MinBox)
			assert.LessOrEqual(t, got.Box, domain.MaxBox)
		})
	}
}

func TestRecordOutcome_Counters(t *testing.T) {
	t.Parallel()

	iv := DefaultIntervals()
	today := domain.NewDay(2025, 3, 10)
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	p := RecordOutcome(nil, "w1", false, today, now, iv)
	p = RecordOutcome(&p, "w1", true, today, now, iv)
	p = RecordOutcome(&p, "w1", true, today, now, iv) // same-day repeat still counts

	assert.Equal(t, 2, p.CorrectCount)
	assert.Equal(t, 1, p.IncorrectCount)
	assert.Equal(t, 3, p.Box)
}

// The end-to-end schedule from the review flow: wrong on day 0, correct on
// day 1, wrong again on day 10.
func TestRecordOutcome_Scenario(t *testing.T) {
	t.Parallel()

	iv := DefaultIntervals()
	day0 := domain.NewDay(2025, 1, 1)
	now := day0.Time()

	p := RecordOutcome(nil, "apple", false, day0, now, iv)
	require.Equal(t, 1, p.Box)
	require.True(t, p.DueAt.Equal(day0.AddDays(1)))

	day1 := day0.AddDays(1)
	p = RecordOutcome(&p, "apple", true, day1, now, iv)
	require.Equal(t, 2, p.Box)
	require.True(t, p.DueAt.Equal(day1.AddDays(3)), "box 2 interval is 3 days")

	day10 := day0.AddDays(10)
	p = RecordOutcome(&p, "apple", false, day10, now, iv)
	require.Equal(t, 1, p.Box)
	require.True(t, p.DueAt.Equal(day10.AddDays(1)))
}

func TestDueSet(t *testing.T) {
	t.Parallel()

	today := domain.NewDay(2025, 3, 10)
	all := map[string]domain.ItemProgress{
		"overdue":  {ItemID: "overdue", Box: 1, DueAt: today.AddDays(-3)},
		"today-b":  {ItemID: "today-b", Box: 2, DueAt: today},
		"today-a":  {ItemID: "today-a", Box: 3, DueAt: today},
		"tomorrow": {ItemID: "tomorrow", Box: 2, DueAt: today.AddDays(1)},
	}

	got := DueSet(all, today)

	// Overdue first, then today's items in id order; future items excluded.
	assert.Equal(t, []string{"overdue", "today-a", "today-b"}, got)
}

func TestDueSet_EmptyAndUnseen(t *testing.T) {
	t.Parallel()

	today := domain.NewDay(2025, 3, 10)

	assert.Empty(t, DueSet(nil, today))
	assert.Empty(t, DueSet(map[string]domain.ItemProgress{}, today))
}

func TestHistogram_IncludesZeroBoxes(t *testing.T) {
	t.Parallel()

	all := map[string]domain.ItemProgress{
		"a": {ItemID: "a", Box: 1},
		"b": {ItemID: "b", Box: 1},
		"c": {ItemID: "c", Box: 5},
	}

	got := Histogram(all)

	assert.Equal(t, map[int]int{1: 2, 2: 0, 3: 0, 4: 0, 5: 1}, got)
}
