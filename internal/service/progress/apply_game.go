package progress

import (
	"context"
	"log/slog"

	"github.com/vocabloom/progress-engine/internal/domain"
	"github.com/vocabloom/progress-engine/internal/service/progress/gamify"
)

// ApplyGameResult records a finished mini-game: completion xp, streak
// extension, the games-played counter, and the per-game best score. For the
// matching game the score is a completion time in seconds and lower is
// better; for the maze and word-search games higher is better.
func (s *Service) ApplyGameResult(ctx context.Context, input GameResultInput) (GameResult, error) {
	if err := input.Validate(); err != nil {
		return GameResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx)
	if err != nil {
		return GameResult{}, err
	}

	today := s.today(input.Today)

	work := st.clone()

	stats, extended := gamify.UpdateStreak(work.stats, today)
	stats.GamesPlayed++

	var improved bool
	switch input.Game {
	case domain.GameMatching:
		if stats.MatchingBestSec == 0 || input.Score < stats.MatchingBestSec {
			stats.MatchingBestSec = input.Score
			improved = true
		}
	case domain.GameMaze:
		if input.Score > stats.MazeHighScore {
			stats.MazeHighScore = input.Score
			improved = true
		}
	case domain.GameWordSearch:
		if input.Score > stats.WordSearchHighScore {
			stats.WordSearchHighScore = input.Score
			improved = true
		}
	}

	stats, leveledUp, err := gamify.AwardXP(stats, s.policy.XPGameCompleted, s.curve)
	if err != nil {
		return GameResult{}, err
	}

	stats, newBadges := gamify.EvaluateBadges(stats, s.catalog)
	work.stats = stats

	if err := s.persist(ctx, st, work, recordStats); err != nil {
		return GameResult{}, err
	}

	s.log.InfoContext(ctx, "game result applied",
		slog.String("game", input.Game.String()),
		slog.Int("score", input.Score),
		slog.Bool("best_improved", improved),
		slog.Int("streak", stats.Streak),
	)

	return GameResult{
		Stats: s.snapshot(stats),
		Delta: StatsDelta{
			XPGained:       s.policy.XPGameCompleted,
			LeveledUp:      leveledUp,
			StreakExtended: extended,
			NewBadges:      newBadges,
		},
		BestImproved: improved,
	}, nil
}
