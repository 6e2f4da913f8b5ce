package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLogEntry records a single applied review event. The ledger keeps a
// bounded journal of the most recent entries for history views and debugging.
type ReviewLogEntry struct {
	ID         uuid.UUID    `json:"id"`
	ItemID     string       `json:"item_id"`
	Correct    bool         `json:"correct"`
	Source     ReviewSource `json:"source"`
	Box        int          `json:"box"` // box after the review was applied
	XPAwarded  int          `json:"xp_awarded"`
	ReviewedAt time.Time    `json:"reviewed_at"`
}
