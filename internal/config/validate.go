package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("store.backend must be sqlite, postgres or memory (got %q)", c.Store.Backend)
	}

	if c.Store.Backend == "postgres" && c.Store.Postgres.DSN == "" {
		return fmt.Errorf("store.postgres.dsn is required for the postgres backend")
	}
	if c.Store.Profile == "" {
		return fmt.Errorf("store.profile must not be empty")
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if err := c.Progression.validate(); err != nil {
		return fmt.Errorf("progression: %w", err)
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	intervals, err := ParseBoxIntervals(s.BoxIntervalsRaw)
	if err != nil {
		return fmt.Errorf("box_intervals: %w", err)
	}
	s.BoxIntervals = intervals

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	return nil
}

func (p *ProgressionConfig) validate() error {
	if p.XPFlashcardCorrect < 0 || p.XPQuizCorrect < 0 || p.XPGameCompleted < 0 {
		return fmt.Errorf("xp amounts must be >= 0")
	}
	if p.CurveBase <= 0 {
		return fmt.Errorf("curve_base must be > 0 (got %v)", p.CurveBase)
	}
	if p.CurveExponent <= 1 {
		return fmt.Errorf("curve_exponent must be > 1 (got %v)", p.CurveExponent)
	}
	if p.MaxLevel < 2 {
		return fmt.Errorf("max_level must be >= 2 (got %d)", p.MaxLevel)
	}
	if p.JournalLimit <= 0 {
		return fmt.Errorf("journal_limit must be > 0 (got %d)", p.JournalLimit)
	}
	return nil
}

// ParseBoxIntervals parses a comma-separated list of five positive,
// strictly increasing day counts (e.g. "1,3,7,14,30").
func ParseBoxIntervals(raw string) ([5]int, error) {
	var out [5]int

	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != len(out) {
		return out, fmt.Errorf("expected %d intervals, got %d", len(out), len(parts))
	}

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("invalid interval %q: %w", p, err)
		}
		if n < 1 {
			return out, fmt.Errorf("interval %d must be >= 1 day (got %d)", domain.MinBox+i, n)
		}
		if i > 0 && n <= out[i-1] {
			return out, fmt.Errorf("intervals must be strictly increasing (%d after %d)", n, out[i-1])
		}
		out[i] = n
	}

	return out, nil
}
