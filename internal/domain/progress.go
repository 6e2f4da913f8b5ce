package domain

import (
	"time"
)

// Leitner box bounds. Box 1 holds the weakest items, box 5 the strongest.
const (
	MinBox = 1
	MaxBox = 5
)

// ItemProgress is the per-item review record. A vocabulary item with no
// ItemProgress record has never been reviewed and is invisible to the
// due set until its first review creates one.
type ItemProgress struct {
	ItemID         string    `json:"item_id"`
	Box            int       `json:"box"`
	DueAt          Day       `json:"due_at"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
}

// IsDue reports whether the item should be re-surfaced on the given day.
func (p ItemProgress) IsDue(today Day) bool {
	return !p.DueAt.After(today)
}

// TotalReviews returns the lifetime review count.
func (p ItemProgress) TotalReviews() int {
	return p.CorrectCount + p.IncorrectCount
}
