package hand

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/tilemapping"
)

// ErrHandTooSmall is returned when a hand is too small to hold its share of
// vowels as well as the wildcard.
var ErrHandTooSmall = errors.New("hand size must be at least 2")

// A Dealer produces a fresh hand of n tiles.
type Dealer interface {
	Deal(n int) (Hand, error)
}

// RandomDealer deals ceil(n/3) vowels, a single wildcard, and consonants for
// the rest. Tiles are drawn with replacement.
type RandomDealer struct {
	table *tilemapping.LetterTable
	rng   RandSource
}

func NewRandomDealer(table *tilemapping.LetterTable, rng RandSource) *RandomDealer {
	return &RandomDealer{table: table, rng: rng}
}

// NumVowels is ceil(n/3).
func NumVowels(n int) int {
	return (n + 2) / 3
}

func (d *RandomDealer) Deal(n int) (Hand, error) {
	if n < 2 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrHandTooSmall, n)
	}
	vowels := d.table.Vowels()
	consonants := d.table.Consonants()
	numVowels := NumVowels(n)

	counts := make(map[rune]int)
	for i := 0; i < numVowels; i++ {
		counts[vowels[d.rng.Intn(len(vowels))]]++
	}
	// One slot is held back for the wildcard.
	for i := numVowels; i < n-1; i++ {
		counts[consonants[d.rng.Intn(len(consonants))]]++
	}
	counts[tilemapping.Wildcard] = 1

	h := Hand{counts: counts}
	log.Debug().Str("hand", h.String()).Msg("dealt")
	return h, nil
}
