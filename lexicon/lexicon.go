package lexicon

import (
	"strings"
)

// Lexicon is the set of words a hand may play. Words are lowercase.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// WordList is a Lexicon backed by an in-memory set. It is read-only once
// built and may be shared between games.
type WordList struct {
	name  string
	words map[string]struct{}
}

// NewWordList builds a lexicon from words. Words are trimmed and lowercased;
// empty lines are skipped.
func NewWordList(name string, words []string) *WordList {
	wl := &WordList{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		wl.words[w] = struct{}{}
	}
	return wl
}

func (wl *WordList) Name() string {
	return wl.name
}

func (wl *WordList) HasWord(word string) bool {
	_, ok := wl.words[word]
	return ok
}

// NumWords returns the number of distinct words.
func (wl *WordList) NumWords() int {
	return len(wl.words)
}

// AcceptAll accepts every word. It is handy for tests that only care about
// tile bookkeeping.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}
