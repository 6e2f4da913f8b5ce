package domain

// ReviewSource identifies which study flow produced a review outcome.
// The XP amount awarded for a correct answer depends on the source.
type ReviewSource string

const (
	SourceFlashcard ReviewSource = "FLASHCARD"
	SourceQuiz      ReviewSource = "QUIZ"
)

func (s ReviewSource) String() string { return string(s) }

func (s ReviewSource) IsValid() bool {
	switch s {
	case SourceFlashcard, SourceQuiz:
		return true
	}
	return false
}

// Game identifies one of the mini-games whose results feed the progression
// ledger.
type Game string

const (
	GameMatching   Game = "MATCHING"
	GameMaze       Game = "MAZE"
	GameWordSearch Game = "WORD_SEARCH"
)

func (g Game) String() string { return string(g) }

func (g Game) IsValid() bool {
	switch g {
	case GameMatching, GameMaze, GameWordSearch:
		return true
	}
	return false
}
