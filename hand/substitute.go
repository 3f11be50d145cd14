package hand

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordhand/tilemapping"
)

var (
	ErrLetterNotInHand      = errors.New("letter is not in the hand")
	ErrWildcardSubstitution = errors.New("the wildcard cannot be substituted")
	// ErrNoReplacement means every letter of the substituted letter's class
	// is already in the hand.
	ErrNoReplacement = errors.New("no replacement letter available")
)

// A Substitutor swaps every copy of one letter in a hand for a different
// letter.
type Substitutor interface {
	Substitute(h Hand, letter rune) (Hand, error)
}

// RandomSubstitutor replaces a vowel with a vowel, or a consonant with a
// consonant, picked at random among the letters the hand does not hold.
type RandomSubstitutor struct {
	table *tilemapping.LetterTable
	rng   RandSource
}

func NewRandomSubstitutor(table *tilemapping.LetterTable, rng RandSource) *RandomSubstitutor {
	return &RandomSubstitutor{table: table, rng: rng}
}

// CheckSubstitutable returns an error if letter may not be substituted in h.
func CheckSubstitutable(h Hand, letter rune) error {
	if letter == tilemapping.Wildcard {
		return ErrWildcardSubstitution
	}
	if !h.Has(letter) {
		return fmt.Errorf("%w: %q", ErrLetterNotInHand, letter)
	}
	return nil
}

func (s *RandomSubstitutor) Substitute(h Hand, letter rune) (Hand, error) {
	letter = unicode.ToLower(letter)
	if err := CheckSubstitutable(h, letter); err != nil {
		return Hand{}, err
	}
	candidates := lo.Filter(s.table.Class(letter), func(r rune, _ int) bool {
		return !h.Has(r)
	})
	if len(candidates) == 0 {
		return Hand{}, fmt.Errorf("%w for %q in hand %v", ErrNoReplacement, letter, h)
	}
	replacement := candidates[s.rng.Intn(len(candidates))]
	log.Debug().Msgf("substituting %c with %c", letter, replacement)
	return h.Replace(letter, replacement), nil
}
