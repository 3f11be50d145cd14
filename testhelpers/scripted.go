// Package testhelpers has deterministic stand-ins for the random parts of a
// game and for the player, so whole games can be scripted in tests.
package testhelpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/hand"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/tilemapping"
)

var ErrScriptExhausted = errors.New("script exhausted")

// ScriptedDealer deals the given hands in order, ignoring the requested
// size.
type ScriptedDealer struct {
	Hands []hand.Hand
	dealt int
}

func NewScriptedDealer(hands ...string) *ScriptedDealer {
	d := &ScriptedDealer{}
	for _, h := range hands {
		d.Hands = append(d.Hands, hand.FromString(h))
	}
	return d
}

func (d *ScriptedDealer) Deal(n int) (hand.Hand, error) {
	if d.dealt >= len(d.Hands) {
		return hand.Hand{}, fmt.Errorf("%w: dealer has no more hands", ErrScriptExhausted)
	}
	h := d.Hands[d.dealt]
	d.dealt++
	return h.Copy(), nil
}

// Dealt returns how many hands have been dealt.
func (d *ScriptedDealer) Dealt() int {
	return d.dealt
}

// FixedSubstitutor always swaps in the same replacement letter.
type FixedSubstitutor struct {
	Replacement rune
	Calls       int
}

func (s *FixedSubstitutor) Substitute(h hand.Hand, letter rune) (hand.Hand, error) {
	s.Calls++
	if err := hand.CheckSubstitutable(h, letter); err != nil {
		return hand.Hand{}, err
	}
	return h.Replace(letter, s.Replacement), nil
}

// ScriptedPlayer answers from queues of canned answers and records every
// event it is told about. Running out of answers is an error, which ends
// the game.
type ScriptedPlayer struct {
	Words         []string
	Substitutions []bool
	Letters       []rune
	Replays       []bool

	Events []game.Event
	// Asked counts the questions of each kind.
	SubstitutionOffers int
	ReplayOffers       int
}

func pop[T any](queue *[]T, what string) (T, error) {
	var zero T
	if len(*queue) == 0 {
		return zero, fmt.Errorf("%w: no %s left", ErrScriptExhausted, what)
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v, nil
}

func (p *ScriptedPlayer) WantsSubstitution(ctx context.Context, h hand.Hand) (bool, error) {
	p.SubstitutionOffers++
	return pop(&p.Substitutions, "substitution answers")
}

func (p *ScriptedPlayer) LetterToSubstitute(ctx context.Context, h hand.Hand) (rune, error) {
	return pop(&p.Letters, "letters")
}

func (p *ScriptedPlayer) NextWord(ctx context.Context, h hand.Hand) (string, error) {
	return pop(&p.Words, "words")
}

func (p *ScriptedPlayer) WantsReplay(ctx context.Context, handScore int) (bool, error) {
	p.ReplayOffers++
	return pop(&p.Replays, "replay answers")
}

func (p *ScriptedPlayer) Notify(evt game.Event) {
	p.Events = append(p.Events, evt)
}

// EventsOf returns the recorded events of type t.
func (p *ScriptedPlayer) EventsOf(t game.EventType) []game.Event {
	var evts []game.Event
	for _, e := range p.Events {
		if e.Type == t {
			evts = append(evts, e)
		}
	}
	return evts
}

// Rules returns game rules over the English letter table and the given
// words, with the given hand size.
func Rules(handSize int, words ...string) *game.GameRules {
	cfg := DefaultConfig()
	cfg.Set(config.ConfigHandSize, handSize)
	rules, err := game.NewGameRules(cfg, tilemapping.EnglishLetterTable(),
		lexicon.NewWordList("test", words))
	if err != nil {
		panic(err)
	}
	return rules
}
