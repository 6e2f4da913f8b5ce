package config

import (
	"time"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Log         LogConfig         `yaml:"log"`
	Store       StoreConfig       `yaml:"store"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Progression ProgressionConfig `yaml:"progression"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StoreConfig selects and configures the ledger store backend.
type StoreConfig struct {
	// Backend is one of "sqlite", "postgres", "memory".
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"sqlite"`
	// Profile scopes all records; several profiles can share one store.
	Profile string `yaml:"profile" env:"STORE_PROFILE" env-default:"default"`

	SQLitePath string         `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"./progress.db"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"POSTGRES_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"POSTGRES_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"POSTGRES_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"POSTGRES_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"POSTGRES_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SchedulerConfig holds the Leitner scheduling parameters.
type SchedulerConfig struct {
	// BoxIntervalsRaw is a comma-separated list of five interval lengths in
	// days, weakest box first.
	BoxIntervalsRaw string `yaml:"box_intervals" env:"SCHEDULER_BOX_INTERVALS" env-default:"1,3,7,14,30"`
	// Timezone decides when "today" rolls over, e.g. "Europe/Berlin".
	Timezone string `yaml:"timezone" env:"SCHEDULER_TIMEZONE" env-default:"UTC"`

	// BoxIntervals is parsed from BoxIntervalsRaw during validation.
	BoxIntervals [5]int `yaml:"-" env:"-"`
	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ProgressionConfig holds the gamification parameters.
type ProgressionConfig struct {
	XPFlashcardCorrect int     `yaml:"xp_flashcard_correct" env:"PROGRESSION_XP_FLASHCARD" env-default:"10"`
	XPQuizCorrect      int     `yaml:"xp_quiz_correct"      env:"PROGRESSION_XP_QUIZ"      env-default:"20"`
	XPGameCompleted    int     `yaml:"xp_game_completed"    env:"PROGRESSION_XP_GAME"      env-default:"30"`
	CurveBase          float64 `yaml:"curve_base"           env:"PROGRESSION_CURVE_BASE"   env-default:"100"`
	CurveExponent      float64 `yaml:"curve_exponent"       env:"PROGRESSION_CURVE_EXP"    env-default:"1.7"`
	MaxLevel           int     `yaml:"max_level"            env:"PROGRESSION_MAX_LEVEL"    env-default:"200"`
	JournalLimit       int     `yaml:"journal_limit"        env:"PROGRESSION_JOURNAL_LIMIT" env-default:"500"`
}

// Policy assembles the domain policy from the scheduler and progression
// sections. Call only after Validate has parsed the raw fields.
func (c *Config) Policy() domain.ProgressPolicy {
	return domain.ProgressPolicy{
		BoxIntervals:       c.Scheduler.BoxIntervals,
		XPFlashcardCorrect: c.Progression.XPFlashcardCorrect,
		XPQuizCorrect:      c.Progression.XPQuizCorrect,
		XPGameCompleted:    c.Progression.XPGameCompleted,
		CurveBase:          c.Progression.CurveBase,
		CurveExponent:      c.Progression.CurveExponent,
		MaxLevel:           c.Progression.MaxLevel,
		JournalLimit:       c.Progression.JournalLimit,
	}
}
