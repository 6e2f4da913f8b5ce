package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vocabloom/progress-engine/internal/app"
	"github.com/vocabloom/progress-engine/internal/domain"
	"github.com/vocabloom/progress-engine/internal/service/progress"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "progress",
		Short:         "Learning progress engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReviewCmd())
	root.AddCommand(newActivityCmd())
	root.AddCommand(newGameCmd())
	root.AddCommand(newDueCmd())
	root.AddCommand(newBoxesCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newResetCmd())
	return root
}

// withApp builds the engine from config, runs fn, and tears it down.
func withApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx := context.Background()

	a, err := app.Build(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func parseDay(raw string) (domain.Day, error) {
	if raw == "" {
		return domain.Day{}, nil
	}
	return domain.ParseDay(raw)
}

func printDelta(cmd *cobra.Command, delta progress.StatsDelta) {
	if delta.XPGained > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "+%d xp\n", delta.XPGained)
	}
	if delta.LeveledUp {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "level up!")
	}
	if delta.StreakExtended {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "streak extended")
	}
	for _, badge := range delta.NewBadges {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "badge unlocked: %s\n", badge)
	}
}

func newReviewCmd() *cobra.Command {
	var wrong bool
	var source, date string

	review := &cobra.Command{
		Use:   "review <item-id>",
		Short: "Record a review outcome for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(date)
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app.App) error {
				res, err := a.Service.ApplyReview(ctx, progress.ReviewInput{
					ItemID:  args[0],
					Correct: !wrong,
					Source:  domain.ReviewSource(strings.ToUpper(source)),
					Today:   day,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: box %d, due %s\n", args[0], res.Item.Box, res.Item.DueAt)
				printDelta(cmd, res.Delta)
				return nil
			})
		},
	}
	review.Flags().BoolVar(&wrong, "wrong", false, "record an incorrect answer")
	review.Flags().StringVar(&source, "source", "flashcard", "review source: flashcard|quiz")
	review.Flags().StringVar(&date, "date", "", "override today (YYYY-MM-DD)")
	return review
}

func newActivityCmd() *cobra.Command {
	var minutes int
	var date string

	activity := &cobra.Command{
		Use:   "activity",
		Short: "Record study activity without a review outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDay(date)
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app.App) error {
				res, err := a.Service.ApplyActivity(ctx, progress.ActivityInput{
					TimeSpent: time.Duration(minutes) * time.Minute,
					Today:     day,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak %d, total time %s\n",
					res.Stats.Streak, (time.Duration(res.Stats.TotalTimeSpentSec) * time.Second))
				printDelta(cmd, res.Delta)
				return nil
			})
		},
	}
	activity.Flags().IntVar(&minutes, "minutes", 0, "minutes spent studying")
	activity.Flags().StringVar(&date, "date", "", "override today (YYYY-MM-DD)")
	return activity
}

func newGameCmd() *cobra.Command {
	var score int
	var date string

	game := &cobra.Command{
		Use:   "game <matching|maze|word_search>",
		Short: "Record a finished mini-game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(date)
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app.App) error {
				res, err := a.Service.ApplyGameResult(ctx, progress.GameResultInput{
					Game:  domain.Game(strings.ToUpper(args[0])),
					Score: score,
					Today: day,
				})
				if err != nil {
					return err
				}
				if res.BestImproved {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "new personal best!")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "games played: %d\n", res.Stats.GamesPlayed)
				printDelta(cmd, res.Delta)
				return nil
			})
		},
	}
	game.Flags().IntVar(&score, "score", 0, "score (matching: completion seconds, others: points)")
	game.Flags().StringVar(&date, "date", "", "override today (YYYY-MM-DD)")
	return game
}

func newDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List items due for review today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app.App) error {
				due, err := a.Service.DueWords(ctx)
				if err != nil {
					return err
				}
				if len(due) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing due")
					return nil
				}
				for _, id := range due {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			})
		},
	}
}

func newBoxesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boxes",
		Short: "Show the item count per Leitner box",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app.App) error {
				hist, err := a.Service.BoxHistogram(ctx)
				if err != nil {
					return err
				}
				for box := domain.MinBox; box <= domain.MaxBox; box++ {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "box %d: %d\n", box, hist[box])
				}
				return nil
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show profile stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app.App) error {
				snap, err := a.Service.Stats(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "level %d (%d/%d xp)\n", snap.Level, snap.XP, snap.NextLevelAt)
				_, _ = fmt.Fprintf(out, "streak: %d days (freezes: %d)\n", snap.Streak, snap.StreakFreezes)
				_, _ = fmt.Fprintf(out, "quiz: %d correct / %d wrong\n", snap.QuizCorrect, snap.QuizWrong)
				_, _ = fmt.Fprintf(out, "flashcards viewed: %d\n", snap.FlashcardsViewed)
				_, _ = fmt.Fprintf(out, "words mastered: %d\n", snap.WordsMastered)
				_, _ = fmt.Fprintf(out, "games played: %d\n", snap.GamesPlayed)
				_, _ = fmt.Fprintf(out, "time studied: %s\n", time.Duration(snap.TotalTimeSpentSec)*time.Second)
				if len(snap.Badges) > 0 {
					_, _ = fmt.Fprintf(out, "badges: %s\n", strings.Join(snap.Badges, ", "))
				}
				return nil
			})
		},
	}
}

func newLogCmd() *cobra.Command {
	var limit int

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent reviews, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(ctx context.Context, a *app.App) error {
				entries, err := a.Service.RecentReviews(ctx, limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no reviews yet")
					return nil
				}
				for _, e := range entries {
					mark := "✓"
					if !e.Correct {
						mark = "✗"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s) box=%d xp=%d\n",
						e.ReviewedAt.Format("2006-01-02 15:04"), mark, e.ItemID, e.Source, e.Box, e.XPAwarded)
				}
				return nil
			})
		},
	}
	logCmd.Flags().IntVar(&limit, "limit", 20, "max entries to show")
	return logCmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <item-id>",
		Short: "Reset an item back to the weakest box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app.App) error {
				item, err := a.Service.ResetItem(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: box %d, due %s\n", args[0], item.Box, item.DueAt)
				return nil
			})
		},
	}
}
