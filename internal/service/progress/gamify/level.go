// Package gamify implements the progression policy: the xp/level curve, the
// daily streak rule, and badge evaluation. All functions are pure; state
// flows in and out as values and the applicator owns the single mutable copy.
package gamify

import (
	"fmt"
	"math"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// Curve defines the cumulative xp threshold per level:
//
//	XPForLevel(L) = round(Base * (L-1)^Exponent)
//
// so level 1 starts at 0 xp and each level costs strictly more than the one
// before it (Exponent > 1 makes the curve progressive, not linear).
type Curve struct {
	Base     float64
	Exponent float64
	MaxLevel int
}

// DefaultCurve returns the shipped level curve.
func DefaultCurve() Curve {
	return Curve{Base: 100, Exponent: 1.7, MaxLevel: 200}
}

// Validate checks the curve produces a strictly increasing threshold series.
func (c Curve) Validate() error {
	if c.Base <= 0 {
		return fmt.Errorf("curve base %v: must be positive", c.Base)
	}
	if c.Exponent <= 1 {
		return fmt.Errorf("curve exponent %v: must exceed 1", c.Exponent)
	}
	if c.MaxLevel < 2 {
		return fmt.Errorf("max level %d: must be at least 2", c.MaxLevel)
	}
	return nil
}

// XPForLevel returns the cumulative xp required to hold the given level.
// Levels below 2 require nothing.
func (c Curve) XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > c.MaxLevel {
		level = c.MaxLevel
	}
	return int(math.Round(c.Base * math.Pow(float64(level-1), c.Exponent)))
}

// LevelFor returns the greatest level whose threshold the xp total meets.
func (c Curve) LevelFor(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for level < c.MaxLevel && c.XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// AwardXP adds xp to the stats and reports whether the addition crossed a
// level boundary. Negative amounts are rejected with ErrInvalidAmount and
// the stats are returned unchanged. Level itself is never stored; callers
// re-derive it from the returned xp via LevelFor.
func AwardXP(stats domain.UserStats, amount int, curve Curve) (domain.UserStats, bool, error) {
	if amount < 0 {
		return stats, false, fmt.Errorf("award %d xp: %w", amount, domain.ErrInvalidAmount)
	}

	before := curve.LevelFor(stats.XP)
	stats.XP += amount
	after := curve.LevelFor(stats.XP)

	return stats, after > before, nil
}
