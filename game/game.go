// Package game holds the rules for judging and scoring words, and the
// controller that takes a player through a series of hands.
//
// A game is a series of hands. Each hand is dealt, optionally has one letter
// substituted (once per game), and is played word by word until it runs out
// of tiles or the player ends it. Once per game a finished hand can be
// replayed from the start; the better of the two scores counts.
package game

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/hand"
)

// Controller runs a game. It is not safe for concurrent use; a single
// goroutine drives it and blocks on the Player.
type Controller struct {
	rules       *GameRules
	dealer      hand.Dealer
	substitutor hand.Substitutor
	player      Player

	state   State
	session Session
}

func NewController(rules *GameRules, dealer hand.Dealer, substitutor hand.Substitutor,
	player Player) *Controller {

	return &Controller{
		rules:       rules,
		dealer:      dealer,
		substitutor: substitutor,
		player:      player,
		state:       AwaitingHandStart,
	}
}

// NewRandomController builds a controller that deals and substitutes at
// random, seeded from the rng-seed setting.
func NewRandomController(cfg *config.Config, rules *GameRules, player Player) *Controller {
	var seed []byte
	if s := cfg.GetString(config.ConfigRNGSeed); s != "" {
		seed = []byte(s)
	}
	rng := hand.NewRandSource(seed)
	return NewController(rules,
		hand.NewRandomDealer(rules.LetterTable(), rng),
		hand.NewRandomSubstitutor(rules.LetterTable(), rng),
		player)
}

func (c *Controller) State() State {
	return c.state
}

// Session returns a copy of the game's bookkeeping.
func (c *Controller) Session() Session {
	return c.session
}

// Play runs a game of numHands hands and returns the total score. It stops
// early with an error if the player or dealer fail, or ctx is done.
func (c *Controller) Play(ctx context.Context, numHands float64) (int, error) {
	c.session = Session{HandsRemaining: numHands}
	c.state = AwaitingHandStart
	if numHands <= 0 {
		c.state = GameOver
	}

	for c.state != GameOver {
		if err := ctx.Err(); err != nil {
			return c.session.CumulativeScore, err
		}
		var err error
		switch c.state {
		case AwaitingHandStart:
			err = c.startHand()
		case SubstitutionOffer:
			err = c.offerSubstitution(ctx)
		case PlayLoop:
			err = c.playWord(ctx)
		case HandComplete:
			c.completeHand()
		case ReplayOffer:
			err = c.offerReplay(ctx)
		case ScoreCommit:
			c.commitScore()
		default:
			err = fmt.Errorf("unexpected state %v", c.state)
		}
		if err != nil {
			return c.session.CumulativeScore, err
		}
	}

	c.player.Notify(Event{Type: EventGameOver, TotalScore: c.session.CumulativeScore})
	log.Debug().Int("total", c.session.CumulativeScore).Msg("game over")
	return c.session.CumulativeScore, nil
}

func (c *Controller) setState(s State) {
	log.Debug().Msgf("state %v -> %v", c.state, s)
	c.state = s
}

func (c *Controller) startHand() error {
	h, err := c.dealer.Deal(c.rules.HandSize())
	if err != nil {
		return fmt.Errorf("dealing hand: %w", err)
	}
	s := &c.session
	s.CurrentHand = h
	s.OriginalHandForReplay = h.Copy()
	s.SubstitutionOfferedThisHand = false
	s.CurrentHandScore = 0

	c.player.Notify(Event{Type: EventHandDealt, Hand: h, TotalScore: s.CumulativeScore})
	c.setState(SubstitutionOffer)
	return nil
}

func (c *Controller) offerSubstitution(ctx context.Context) error {
	s := &c.session
	if s.SubstitutionUsed || s.SubstitutionOfferedThisHand || s.ReplayPending {
		c.setState(PlayLoop)
		return nil
	}
	s.SubstitutionOfferedThisHand = true

	yes, err := c.player.WantsSubstitution(ctx, s.CurrentHand)
	if err != nil {
		return err
	}
	if !yes {
		c.setState(PlayLoop)
		return nil
	}

	var substituted hand.Hand
	for {
		letter, err := c.player.LetterToSubstitute(ctx, s.CurrentHand)
		if err != nil {
			return err
		}
		substituted, err = c.substitutor.Substitute(s.CurrentHand, unicode.ToLower(letter))
		if errors.Is(err, hand.ErrLetterNotInHand) || errors.Is(err, hand.ErrWildcardSubstitution) {
			// A bad choice from the player; ask again.
			c.player.Notify(Event{Type: EventSubstitutionRejected, Hand: s.CurrentHand, Err: err})
			continue
		}
		if err != nil {
			return fmt.Errorf("substituting %q: %w", letter, err)
		}
		break
	}

	s.CurrentHand = substituted
	// A replay of this hand starts from the substituted hand.
	s.OriginalHandForReplay = substituted.Copy()
	s.SubstitutionUsed = true
	c.player.Notify(Event{Type: EventHandSubstituted, Hand: substituted})
	c.setState(PlayLoop)
	return nil
}

func (c *Controller) playWord(ctx context.Context) error {
	s := &c.session
	if s.CurrentHand.Len() == 0 {
		c.setState(HandComplete)
		return nil
	}
	word, err := c.player.NextWord(ctx, s.CurrentHand)
	if err != nil {
		return err
	}
	if word == EndToken {
		c.setState(HandComplete)
		return nil
	}

	n := s.CurrentHand.Len()
	if c.rules.IsValidWord(word, s.CurrentHand) {
		points := c.rules.WordScore(word, n)
		s.CurrentHandScore += points
		c.player.Notify(Event{Type: EventWordScored, Word: word, Points: points,
			HandScore: s.CurrentHandScore, Replay: s.ReplayPending})
	} else {
		c.player.Notify(Event{Type: EventWordRejected, Word: word,
			HandScore: s.CurrentHandScore, Replay: s.ReplayPending})
	}
	// Tiles are spent whether or not the word was any good.
	s.CurrentHand = s.CurrentHand.Consume(word)
	log.Debug().Str("word", word).Str("left", s.CurrentHand.String()).Msg("played")

	if s.CurrentHand.Len() == 0 {
		c.setState(HandComplete)
	}
	return nil
}

func (c *Controller) completeHand() {
	s := &c.session
	c.player.Notify(Event{Type: EventHandEnded, HandScore: s.CurrentHandScore,
		Replay: s.ReplayPending})

	if s.ReplayPending {
		if s.CurrentHandScore < s.PreviousHandScore {
			s.CurrentHandScore = s.PreviousHandScore
		}
		s.ReplayPending = false
		log.Debug().Int("kept", s.CurrentHandScore).Msg("replay finished")
	}
	c.setState(ReplayOffer)
}

func (c *Controller) offerReplay(ctx context.Context) error {
	s := &c.session
	if s.ReplayUsed {
		c.setState(ScoreCommit)
		return nil
	}
	yes, err := c.player.WantsReplay(ctx, s.CurrentHandScore)
	if err != nil {
		return err
	}
	if !yes {
		c.setState(ScoreCommit)
		return nil
	}

	s.PreviousHandScore = s.CurrentHandScore
	s.CurrentHandScore = 0
	s.ReplayUsed = true
	s.ReplayPending = true
	s.CurrentHand = s.OriginalHandForReplay.Copy()

	c.player.Notify(Event{Type: EventReplayStarted, Hand: s.CurrentHand, Replay: true})
	c.setState(PlayLoop)
	return nil
}

func (c *Controller) commitScore() {
	s := &c.session
	s.CumulativeScore += s.CurrentHandScore
	s.CurrentHandScore = 0
	s.HandsRemaining--
	if s.HandsRemaining > 0 {
		c.setState(AwaitingHandStart)
	} else {
		c.setState(GameOver)
	}
}
