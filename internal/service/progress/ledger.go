package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/vocabloom/progress-engine/internal/domain"
)

// Persisted record keys. The host store scopes them per profile.
type record string

const (
	recordProgress record = "progress"
	recordStats    record = "stats"
	recordJournal  record = "journal"
)

// ledgerState is the in-memory image of the persisted ledger.
type ledgerState struct {
	progress map[string]domain.ItemProgress
	stats    domain.UserStats
	journal  []domain.ReviewLogEntry
}

// clone returns a copy safe to mutate without touching the known-good state.
func (st *ledgerState) clone() *ledgerState {
	return &ledgerState{
		progress: maps.Clone(st.progress),
		stats:    st.stats.Clone(),
		journal:  slices.Clone(st.journal),
	}
}

// appendJournal appends an entry and drops the oldest ones past the cap.
func (st *ledgerState) appendJournal(entry domain.ReviewLogEntry, limit int) {
	st.journal = append(st.journal, entry)
	if len(st.journal) > limit {
		st.journal = slices.Clone(st.journal[len(st.journal)-limit:])
	}
}

func (st *ledgerState) encode(r record) ([]byte, error) {
	switch r {
	case recordProgress:
		return json.Marshal(st.progress)
	case recordStats:
		return json.Marshal(st.stats)
	case recordJournal:
		return json.Marshal(st.journal)
	default:
		return nil, fmt.Errorf("unknown ledger record %q", r)
	}
}

// load returns the cached ledger state, reading it from the store on first
// access (and after a failed persist invalidated the cache). Absent records
// start empty: a fresh profile is all zeros.
func (s *Service) load(ctx context.Context) (*ledgerState, error) {
	if s.cache != nil {
		return s.cache, nil
	}

	st := &ledgerState{progress: make(map[string]domain.ItemProgress)}

	raw, err := s.kv.Load(ctx, string(recordProgress))
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load progress: %w: %w", domain.ErrPersistence, err)
	default:
		if err := json.Unmarshal(raw, &st.progress); err != nil {
			return nil, fmt.Errorf("decode progress: %w", err)
		}
	}

	raw, err = s.kv.Load(ctx, string(recordStats))
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load stats: %w: %w", domain.ErrPersistence, err)
	default:
		if err := json.Unmarshal(raw, &st.stats); err != nil {
			return nil, fmt.Errorf("decode stats: %w", err)
		}
	}

	raw, err = s.kv.Load(ctx, string(recordJournal))
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load journal: %w: %w", domain.ErrPersistence, err)
	default:
		if err := json.Unmarshal(raw, &st.journal); err != nil {
			return nil, fmt.Errorf("decode journal: %w", err)
		}
	}

	s.cache = st
	return st, nil
}

// persist writes the dirty records of next to the store. On any write
// failure it restores the already-written keys from the known-good prev
// state (best effort), drops the cache so the next access reloads from the
// store, and reports ErrPersistence: the caller must treat the whole
// operation as not applied.
func (s *Service) persist(ctx context.Context, prev, next *ledgerState, dirty ...record) error {
	encoded := make(map[record][]byte, len(dirty))
	for _, r := range dirty {
		raw, err := next.encode(r)
		if err != nil {
			return fmt.Errorf("encode %s: %w", r, err)
		}
		encoded[r] = raw
	}

	var written []record
	for _, r := range dirty {
		if err := s.kv.Save(ctx, string(r), encoded[r]); err != nil {
			s.restore(ctx, prev, written)
			s.cache = nil
			return fmt.Errorf("save %s: %w: %w", r, domain.ErrPersistence, err)
		}
		written = append(written, r)
	}

	s.cache = next
	return nil
}

// restore rewrites previously committed records from the known-good state.
// Failures here are logged and swallowed: the cache is dropped anyway, so a
// half-restored store is re-read, not trusted.
func (s *Service) restore(ctx context.Context, prev *ledgerState, written []record) {
	for _, r := range written {
		raw, err := prev.encode(r)
		if err != nil {
			continue
		}
		if err := s.kv.Save(ctx, string(r), raw); err != nil {
			s.log.WarnContext(ctx, "ledger restore failed",
				slog.String("record", string(r)),
				slog.String("error", err.Error()))
		}
	}
}
