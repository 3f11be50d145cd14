package game

import (
	"strings"
	"unicode/utf8"

	"github.com/domino14/wordhand/hand"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/tilemapping"
)

// EndToken ends the current hand when entered instead of a word.
const EndToken = "*END*"

// IsValidWord returns true if word is in the lexicon and the hand holds
// every tile it needs. A word with a single wildcard is in the lexicon if
// some consonant in the wildcard's place makes a lexicon word.
func IsValidWord(word string, h hand.Hand, lex lexicon.Lexicon, table *tilemapping.LetterTable) bool {
	word = strings.ToLower(word)

	switch strings.Count(word, string(tilemapping.Wildcard)) {
	case 0:
		if !lex.HasWord(word) {
			return false
		}
	case 1:
		if !wildcardResolves(word, lex, table) {
			return false
		}
	default:
		return false
	}
	return handHolds(h, word)
}

func wildcardResolves(word string, lex lexicon.Lexicon, table *tilemapping.LetterTable) bool {
	for _, c := range table.Consonants() {
		if lex.HasWord(strings.Replace(word, string(tilemapping.Wildcard), string(c), 1)) {
			return true
		}
	}
	return false
}

// handHolds checks tile sufficiency, stopping at the first overdrawn letter.
func handHolds(h hand.Hand, word string) bool {
	used := make(map[rune]int)
	for _, r := range word {
		used[r]++
		if used[r] > h.Count(r) {
			return false
		}
	}
	return true
}

// WordScore is the score of a word played from a hand of n tiles: the sum of
// its letter values, times the larger of 1 and 9*len - 4*(n-len).
func WordScore(table *tilemapping.LetterTable, word string, n int) int {
	word = strings.ToLower(word)
	wordLen := utf8.RuneCountInString(word)

	letterPoints := table.WordValue(word)
	multiplier := 9*wordLen - 4*(n-wordLen)
	if multiplier < 1 {
		multiplier = 1
	}
	return letterPoints * multiplier
}
