package domain

// BadgeDefinition is a static catalog entry. Unlock is a pure predicate over
// the post-update UserStats; display metadata lives with the UI layer.
type BadgeDefinition struct {
	ID          string
	Name        string
	Description string
	Unlock      func(UserStats) bool
}

// DefaultCatalog returns the built-in badge catalog. The slice order is the
// evaluation order: when several badges become eligible in one update they
// unlock in this order, so the catalog must stay an explicitly ordered list.
func DefaultCatalog() []BadgeDefinition {
	return []BadgeDefinition{
		{
			ID:          "first_steps",
			Name:        "First Steps",
			Description: "View your first flashcard",
			Unlock:      func(s UserStats) bool { return s.FlashcardsViewed >= 1 },
		},
		{
			ID:          "card_collector",
			Name:        "Card Collector",
			Description: "View 100 flashcards",
			Unlock:      func(s UserStats) bool { return s.FlashcardsViewed >= 100 },
		},
		{
			ID:          "card_devotee",
			Name:        "Card Devotee",
			Description: "View 1000 flashcards",
			Unlock:      func(s UserStats) bool { return s.FlashcardsViewed >= 1000 },
		},
		{
			ID:          "quiz_rookie",
			Name:        "Quiz Rookie",
			Description: "Answer 10 quiz questions correctly",
			Unlock:      func(s UserStats) bool { return s.QuizCorrect >= 10 },
		},
		{
			ID:          "quiz_master",
			Name:        "Quiz Master",
			Description: "Answer 100 quiz questions correctly",
			Unlock:      func(s UserStats) bool { return s.QuizCorrect >= 100 },
		},
		{
			ID:          "warming_up",
			Name:        "Warming Up",
			Description: "Reach a 3-day streak",
			Unlock:      func(s UserStats) bool { return s.Streak >= 3 },
		},
		{
			ID:          "on_fire",
			Name:        "On Fire",
			Description: "Reach a 7-day streak",
			Unlock:      func(s UserStats) bool { return s.Streak >= 7 },
		},
		{
			ID:          "unstoppable",
			Name:        "Unstoppable",
			Description: "Reach a 30-day streak",
			Unlock:      func(s UserStats) bool { return s.Streak >= 30 },
		},
		{
			ID:          "first_mastery",
			Name:        "First Mastery",
			Description: "Bring a word to the strongest box",
			Unlock:      func(s UserStats) bool { return s.WordsMastered >= 1 },
		},
		{
			ID:          "word_wizard",
			Name:        "Word Wizard",
			Description: "Master 50 words",
			Unlock:      func(s UserStats) bool { return s.WordsMastered >= 50 },
		},
		{
			ID:          "game_on",
			Name:        "Game On",
			Description: "Finish your first mini-game",
			Unlock:      func(s UserStats) bool { return s.GamesPlayed >= 1 },
		},
		{
			ID:          "scholar",
			Name:        "Scholar",
			Description: "Earn 1000 XP",
			Unlock:      func(s UserStats) bool { return s.XP >= 1000 },
		},
		{
			ID:          "sage",
			Name:        "Sage",
			Description: "Earn 10000 XP",
			Unlock:      func(s UserStats) bool { return s.XP >= 10000 },
		},
	}
}
