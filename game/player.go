package game

import (
	"context"

	"github.com/domino14/wordhand/hand"
)

// A Player answers the controller's questions. Every call blocks until the
// player answers; an error ends the game.
type Player interface {
	WantsSubstitution(ctx context.Context, h hand.Hand) (bool, error)
	LetterToSubstitute(ctx context.Context, h hand.Hand) (rune, error)
	// NextWord returns the next word to play, or EndToken.
	NextWord(ctx context.Context, h hand.Hand) (string, error)
	WantsReplay(ctx context.Context, handScore int) (bool, error)
	Notify(evt Event)
}

type EventType int

const (
	EventHandDealt EventType = iota
	EventHandSubstituted
	EventSubstitutionRejected
	EventWordScored
	EventWordRejected
	EventHandEnded
	EventReplayStarted
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventHandDealt:
		return "hand-dealt"
	case EventHandSubstituted:
		return "hand-substituted"
	case EventSubstitutionRejected:
		return "substitution-rejected"
	case EventWordScored:
		return "word-scored"
	case EventWordRejected:
		return "word-rejected"
	case EventHandEnded:
		return "hand-ended"
	case EventReplayStarted:
		return "replay-started"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event tells the player what just happened. Only the fields relevant to
// the event type are set.
type Event struct {
	Type EventType
	Hand hand.Hand
	Word string
	// Points earned by Word.
	Points int
	// HandScore is the running score of the hand being played.
	HandScore  int
	TotalScore int
	// Replay is true while the replayed hand is being played.
	Replay bool
	Err    error
}
