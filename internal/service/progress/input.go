package progress

import (
	"time"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// ReviewInput holds the parameters for applying a review outcome.
type ReviewInput struct {
	ItemID  string
	Correct bool
	Source  domain.ReviewSource

	// Today overrides the clock-derived calendar day. Zero means "now".
	Today domain.Day
}

// Validate checks all fields and collects all errors.
func (i *ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == "" {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be FLASHCARD or QUIZ"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ActivityInput holds the parameters for a review-less activity event
// ("app opened", "time spent studying").
type ActivityInput struct {
	TimeSpent time.Duration
	Today     domain.Day
}

// Validate checks all fields and collects all errors.
func (i *ActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.TimeSpent < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent", Message: "must be non-negative"})
	}
	if i.TimeSpent > 24*time.Hour {
		errs = append(errs, domain.FieldError{Field: "time_spent", Message: "max 24 hours per event"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GameResultInput holds the parameters for recording a finished mini-game.
type GameResultInput struct {
	Game  domain.Game
	Score int
	Today domain.Day
}

// Validate checks all fields and collects all errors.
func (i *GameResultInput) Validate() error {
	var errs []domain.FieldError

	if !i.Game.IsValid() {
		errs = append(errs, domain.FieldError{Field: "game", Message: "must be MATCHING, MAZE, or WORD_SEARCH"})
	}
	if i.Score < 0 {
		errs = append(errs, domain.FieldError{Field: "score", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
