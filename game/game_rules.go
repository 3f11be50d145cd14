package game

import (
	"fmt"

	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/hand"
	"github.com/domino14/wordhand/lexicon"
	"github.com/domino14/wordhand/tilemapping"
)

// GameRules bundles what a game needs to judge and score words.
type GameRules struct {
	table    *tilemapping.LetterTable
	lexicon  lexicon.Lexicon
	handSize int
}

func NewGameRules(cfg *config.Config, table *tilemapping.LetterTable,
	lex lexicon.Lexicon) (*GameRules, error) {

	handSize := cfg.GetInt(config.ConfigHandSize)
	if handSize < 2 {
		return nil, fmt.Errorf("%w: configured %d", hand.ErrHandTooSmall, handSize)
	}
	return &GameRules{table: table, lexicon: lex, handSize: handSize}, nil
}

func (g GameRules) LetterTable() *tilemapping.LetterTable {
	return g.table
}

func (g GameRules) Lexicon() lexicon.Lexicon {
	return g.lexicon
}

func (g GameRules) HandSize() int {
	return g.handSize
}

func (g GameRules) IsValidWord(word string, h hand.Hand) bool {
	return IsValidWord(word, h, g.lexicon, g.table)
}

func (g GameRules) WordScore(word string, n int) int {
	return WordScore(g.table, word, n)
}
