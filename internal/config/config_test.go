package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "text"

store:
  backend: "sqlite"
  profile: "alice"
  sqlite_path: "/tmp/progress-test.db"

scheduler:
  box_intervals: "2,4,8,16,32"
  timezone: "Europe/Berlin"

progression:
  xp_flashcard_correct: 5
  xp_quiz_correct: 15
  xp_game_completed: 25
  curve_base: 120
  curve_exponent: 1.5
  max_level: 99
  journal_limit: 100
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log config not applied: %+v", cfg.Log)
	}
	if cfg.Store.Backend != "sqlite" || cfg.Store.Profile != "alice" {
		t.Errorf("store config not applied: %+v", cfg.Store)
	}
	if got := cfg.Scheduler.BoxIntervals; got != [5]int{2, 4, 8, 16, 32} {
		t.Errorf("box intervals = %v, want [2 4 8 16 32]", got)
	}
	if cfg.Scheduler.Location == nil || cfg.Scheduler.Location.String() != "Europe/Berlin" {
		t.Errorf("location = %v, want Europe/Berlin", cfg.Scheduler.Location)
	}

	policy := cfg.Policy()
	if policy.XPQuizCorrect != 15 || policy.CurveBase != 120 || policy.MaxLevel != 99 {
		t.Errorf("policy not assembled from config: %+v", policy)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir()) // make sure no stray ./config.yaml is picked up

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.Backend != "sqlite" {
		t.Errorf("default backend = %q, want sqlite", cfg.Store.Backend)
	}
	if got := cfg.Scheduler.BoxIntervals; got != [5]int{1, 3, 7, 14, 30} {
		t.Errorf("default box intervals = %v", got)
	}
	if cfg.Progression.XPQuizCorrect != 20 {
		t.Errorf("default quiz xp = %d, want 20", cfg.Progression.XPQuizCorrect)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("SCHEDULER_BOX_INTERVALS", "1,2,3,4,5")
	t.Setenv("PROGRESSION_XP_GAME", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.Backend != "memory" {
		t.Errorf("backend = %q, want memory", cfg.Store.Backend)
	}
	if got := cfg.Scheduler.BoxIntervals; got != [5]int{1, 2, 3, 4, 5} {
		t.Errorf("box intervals = %v", got)
	}
	if cfg.Progression.XPGameCompleted != 50 {
		t.Errorf("game xp = %d, want 50", cfg.Progression.XPGameCompleted)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicitly missing config file")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad backend", func(c *Config) { c.Store.Backend = "redis" }},
		{"postgres without dsn", func(c *Config) { c.Store.Backend = "postgres"; c.Store.Postgres.DSN = "" }},
		{"empty profile", func(c *Config) { c.Store.Profile = "" }},
		{"bad timezone", func(c *Config) { c.Scheduler.Timezone = "Mars/Olympus" }},
		{"too few intervals", func(c *Config) { c.Scheduler.BoxIntervalsRaw = "1,2,3" }},
		{"non-increasing intervals", func(c *Config) { c.Scheduler.BoxIntervalsRaw = "1,3,3,14,30" }},
		{"zero interval", func(c *Config) { c.Scheduler.BoxIntervalsRaw = "0,3,7,14,30" }},
		{"negative xp", func(c *Config) { c.Progression.XPQuizCorrect = -1 }},
		{"flat curve", func(c *Config) { c.Progression.CurveExponent = 1.0 }},
		{"max level too small", func(c *Config) { c.Progression.MaxLevel = 1 }},
		{"zero journal limit", func(c *Config) { c.Progression.JournalLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Store:     StoreConfig{Backend: "sqlite", Profile: "default", SQLitePath: "x.db"},
				Scheduler: SchedulerConfig{BoxIntervalsRaw: "1,3,7,14,30", Timezone: "UTC"},
				Progression: ProgressionConfig{
					XPFlashcardCorrect: 10, XPQuizCorrect: 20, XPGameCompleted: 30,
					CurveBase: 100, CurveExponent: 1.7, MaxLevel: 200, JournalLimit: 500,
				},
			}
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseBoxIntervals(t *testing.T) {
	got, err := ParseBoxIntervals(" 1, 3 ,7,14,30 ")
	if err != nil {
		t.Fatalf("ParseBoxIntervals: %v", err)
	}
	if got != [5]int{1, 3, 7, 14, 30} {
		t.Errorf("got %v", got)
	}

	if _, err := ParseBoxIntervals("1,3,7,14,x"); err == nil {
		t.Error("expected error for non-numeric interval")
	}
}
