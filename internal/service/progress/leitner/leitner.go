// Package leitner implements the five-box Leitner spaced repetition
// scheduler. All functions are pure: no clock, no store, no logger.
package leitner

import (
	"fmt"
	"sort"
	"time"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// Intervals maps Leitner box 1..5 to the review interval in days.
type Intervals [5]int

// DefaultIntervals returns the shipped interval table.
func DefaultIntervals() Intervals {
	return Intervals{1, 3, 7, 14, 30}
}

// Validate checks the table is usable: every interval at least one day and
// strictly increasing with the box number. The strict increase is what backs
// the UI promise that a higher box means more durable retention.
func (iv Intervals) Validate() error {
	for i, days := range iv {
		if days < 1 {
			return fmt.Errorf("box %d interval %d: must be at least 1 day", i+1, days)
		}
		if i > 0 && days <= iv[i-1] {
			return fmt.Errorf("box %d interval %d: must exceed box %d interval %d", i+1, days, i, iv[i-1])
		}
	}
	return nil
}

// ForBox returns the interval in days for the given box.
func (iv Intervals) ForBox(box int) int {
	if box < domain.MinBox {
		box = domain.MinBox
	}
	if box > domain.MaxBox {
		box = domain.MaxBox
	}
	return iv[box-1]
}

// RecordOutcome applies one review outcome and returns the updated record.
// A nil prev means the item has never been reviewed; it starts in box 1.
// A correct answer promotes by one box (capped at 5). A wrong answer demotes
// all the way to box 1: forgotten items get maximum re-exposure. That full
// demotion is policy, not an accident.
//
// Repeat reviews on the same day run the full transition again; the scheduler
// does not de-duplicate.
func RecordOutcome(prev *domain.ItemProgress, itemID string, correct bool, today domain.Day, now time.Time, iv Intervals) domain.ItemProgress {
	var p domain.ItemProgress
	if prev != nil {
		p = *prev
	} else {
		p = domain.ItemProgress{ItemID: itemID, Box: domain.MinBox}
	}

	if correct {
		if p.Box < domain.MaxBox {
			p.Box++
		}
		p.CorrectCount++
	} else {
		p.Box = domain.MinBox
		p.IncorrectCount++
	}

	p.DueAt = today.AddDays(iv.ForBox(p.Box))
	p.LastReviewedAt = now
	return p
}

// DueSet returns the ids of every item whose due day has arrived or passed,
// ordered by (due day, item id) so callers get a stable review queue. Items
// without a record are unseen and excluded by construction.
func DueSet(all map[string]domain.ItemProgress, today domain.Day) []string {
	due := make([]domain.ItemProgress, 0, len(all))
	for _, p := range all {
		if p.IsDue(today) {
			due = append(due, p)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].DueAt.Before(due[j].DueAt)
		}
		return due[i].ItemID < due[j].ItemID
	})

	ids := make([]string, len(due))
	for i, p := range due {
		ids[i] = p.ItemID
	}
	return ids
}

// Histogram counts items per box. Every box 1..5 is present in the result,
// zero-valued boxes included.
func Histogram(all map[string]domain.ItemProgress) map[int]int {
	counts := make(map[int]int, domain.MaxBox)
	for box := domain.MinBox; box <= domain.MaxBox; box++ {
		counts[box] = 0
	}
	for _, p := range all {
		if p.Box >= domain.MinBox && p.Box <= domain.MaxBox {
			counts[p.Box]++
		}
	}
	return counts
}
