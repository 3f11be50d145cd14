package game

import (
	"github.com/domino14/wordhand/hand"
)

// State is where the controller is in a game.
type State int

const (
	AwaitingHandStart State = iota
	SubstitutionOffer
	PlayLoop
	HandComplete
	ReplayOffer
	ScoreCommit
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingHandStart:
		return "awaiting-hand-start"
	case SubstitutionOffer:
		return "substitution-offer"
	case PlayLoop:
		return "play-loop"
	case HandComplete:
		return "hand-complete"
	case ReplayOffer:
		return "replay-offer"
	case ScoreCommit:
		return "score-commit"
	case GameOver:
		return "game-over"
	}
	return "invalid"
}

// Session is the bookkeeping of a single game.
type Session struct {
	// SubstitutionUsed and ReplayUsed stay true for the rest of the game
	// once set.
	SubstitutionUsed            bool
	SubstitutionOfferedThisHand bool
	ReplayUsed                  bool
	// ReplayPending is true only while the replayed hand is played.
	ReplayPending bool

	CumulativeScore   int
	CurrentHandScore  int
	PreviousHandScore int
	// HandsRemaining only counts down when a hand is committed, never on a
	// replay. It may start out fractional.
	HandsRemaining float64

	CurrentHand hand.Hand
	// OriginalHandForReplay is the hand as it was when play on it started,
	// after any substitution.
	OriginalHandForReplay hand.Hand
}
