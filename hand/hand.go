// Package hand holds the Hand value type and the strategies that produce
// new hands: dealing, consuming a played word and substituting a letter.
//
// A Hand is never mutated once built. Every operation returns a new Hand.
package hand

import (
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/domino14/wordhand/tilemapping"
)

// Hand is a multiset of tiles. Every letter it holds has a count of at
// least one.
type Hand struct {
	counts map[rune]int
}

// New builds a hand from a letter count map. Letters are lowercased and
// letters with a count of zero or less are dropped. The map is copied.
func New(counts map[rune]int) Hand {
	h := Hand{counts: make(map[rune]int, len(counts))}
	for r, ct := range counts {
		if ct > 0 {
			h.counts[unicode.ToLower(r)] += ct
		}
	}
	return h
}

// FromString builds a hand holding one tile per character of letters.
func FromString(letters string) Hand {
	h := Hand{counts: make(map[rune]int)}
	for _, r := range strings.ToLower(letters) {
		h.counts[r]++
	}
	return h
}

// Count returns how many copies of r the hand holds.
func (h Hand) Count(r rune) int {
	return h.counts[r]
}

func (h Hand) Has(r rune) bool {
	return h.counts[r] > 0
}

// Len is the total number of tiles in the hand.
func (h Hand) Len() int {
	return lo.Sum(lo.Values(h.counts))
}

// Counts returns a copy of the letter counts.
func (h Hand) Counts() map[rune]int {
	m := make(map[rune]int, len(h.counts))
	for r, ct := range h.counts {
		m[r] = ct
	}
	return m
}

// Letters returns the distinct letters of the hand in alphabetical order,
// with the wildcard last.
func (h Hand) Letters() []rune {
	letters := lo.Keys(h.counts)
	sort.Slice(letters, func(i, j int) bool {
		a, b := letters[i], letters[j]
		if a == tilemapping.Wildcard || b == tilemapping.Wildcard {
			return b == tilemapping.Wildcard && a != tilemapping.Wildcard
		}
		return a < b
	})
	return letters
}

// Tiles returns every tile of the hand, in the order of Letters.
func (h Hand) Tiles() []rune {
	tiles := make([]rune, 0, h.Len())
	for _, r := range h.Letters() {
		for i := 0; i < h.counts[r]; i++ {
			tiles = append(tiles, r)
		}
	}
	return tiles
}

// String returns a user-visible version of this hand, such as "a e l l !".
func (h Hand) String() string {
	tiles := h.Tiles()
	parts := make([]string, len(tiles))
	for i, r := range tiles {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Copy returns a hand with the same tiles.
func (h Hand) Copy() Hand {
	return Hand{counts: h.Counts()}
}

// Equal returns true if both hands hold exactly the same tiles.
func (h Hand) Equal(other Hand) bool {
	if len(h.counts) != len(other.counts) {
		return false
	}
	for r, ct := range h.counts {
		if other.counts[r] != ct {
			return false
		}
	}
	return true
}

// Consume returns the hand left over after the letters of word are taken
// out of it. Letters the hand does not hold are ignored, and a letter used
// more often than the hand holds simply runs out.
func (h Hand) Consume(word string) Hand {
	left := h.Counts()
	for _, r := range strings.ToLower(word) {
		left[r]--
	}
	for r, ct := range left {
		if ct < 1 {
			delete(left, r)
		}
	}
	return Hand{counts: left}
}

// Replace returns a hand where every copy of old is swapped for replacement.
// The replacement takes over the count old had; if the hand already held
// replacement the counts are added together.
func (h Hand) Replace(old, replacement rune) Hand {
	counts := h.Counts()
	ct, ok := counts[old]
	if !ok {
		return Hand{counts: counts}
	}
	delete(counts, old)
	counts[replacement] += ct
	return Hand{counts: counts}
}
