// Package progress implements the learning progress engine: a Leitner
// scheduler and a gamification ledger behind a single mutation entry point.
// The service owns the only mutable copy of the profile's state; every
// apply* call loads, transforms through the pure leitner/gamify packages,
// persists, and only then surfaces the result.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vocabloom/progress-engine/internal/domain"
	"github.com/vocabloom/progress-engine/internal/service/progress/gamify"
	"github.com/vocabloom/progress-engine/internal/service/progress/leitner"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces
// ---------------------------------------------------------------------------

// Store is the persistence substrate supplied by the host: a flat key-value
// byte store. Load returns domain.ErrNotFound for absent keys. Exported so
// the composition root can pick a backend at runtime.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the event applicator for one local profile. Mutating calls are
// serialized by an internal mutex: a second apply never starts while a prior
// persistence write is outstanding.
type Service struct {
	log       *slog.Logger
	kv        Store
	clock     clockwork.Clock
	loc       *time.Location
	intervals leitner.Intervals
	curve     gamify.Curve
	policy    domain.ProgressPolicy
	catalog   []domain.BadgeDefinition

	mu    sync.Mutex
	cache *ledgerState // last known-good state; nil until first load or after a failed persist
}

// NewService creates a progress engine over the given store and clock.
func NewService(
	log *slog.Logger,
	kv Store,
	clock clockwork.Clock,
	loc *time.Location,
	policy domain.ProgressPolicy,
	catalog []domain.BadgeDefinition,
) (*Service, error) {
	intervals := leitner.Intervals(policy.BoxIntervals)
	if err := intervals.Validate(); err != nil {
		return nil, fmt.Errorf("invalid box intervals: %w", err)
	}

	curve := gamify.Curve{Base: policy.CurveBase, Exponent: policy.CurveExponent, MaxLevel: policy.MaxLevel}
	if err := curve.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level curve: %w", err)
	}

	if policy.XPFlashcardCorrect < 0 || policy.XPQuizCorrect < 0 || policy.XPGameCompleted < 0 {
		return nil, fmt.Errorf("xp amounts must be non-negative: %w", domain.ErrInvalidAmount)
	}

	if policy.JournalLimit <= 0 {
		policy.JournalLimit = domain.DefaultPolicy().JournalLimit
	}
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		log:       log,
		kv:        kv,
		clock:     clock,
		loc:       loc,
		intervals: intervals,
		curve:     curve,
		policy:    policy,
		catalog:   catalog,
	}, nil
}

// today resolves the effective calendar day: an explicit override from the
// input wins, otherwise the clock in the configured location.
func (s *Service) today(override domain.Day) domain.Day {
	if !override.IsZero() {
		return override
	}
	return domain.DayOf(s.clock.Now(), s.loc)
}

// xpFor returns the XP amount for a correct answer from the given source.
func (s *Service) xpFor(source domain.ReviewSource) int {
	switch source {
	case domain.SourceQuiz:
		return s.policy.XPQuizCorrect
	default:
		return s.policy.XPFlashcardCorrect
	}
}
