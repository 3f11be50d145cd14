// Package tilemapping describes the tiles a hand can hold: their point
// values, and whether each letter is a vowel or a consonant.
package tilemapping

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Wildcard is the tile that can stand in for any consonant. It is worth
// nothing.
const Wildcard = '!'

//go:embed english.csv
var englishCSV string

var errBadRecord = errors.New("letter table records must have 3 fields")

// LetterTable maps every tile to its point value. It is immutable once
// scanned.
type LetterTable struct {
	scores     map[rune]int
	vowels     []rune
	consonants []rune
}

// ScanLetterTable reads a table from CSV records of the form
// letter,value,vowel where vowel is 1 or 0. The wildcard may be listed; it is
// never counted as a vowel or a consonant.
func ScanLetterTable(data io.Reader) (*LetterTable, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = -1
	lt := &LetterTable{scores: make(map[rune]int)}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != 3 {
			return nil, errBadRecord
		}
		letter, size := utf8.DecodeRuneInString(strings.TrimSpace(record[0]))
		if size == 0 || size != len(strings.TrimSpace(record[0])) {
			return nil, fmt.Errorf("letter %q is not a single character", record[0])
		}
		letter = unicode.ToLower(letter)
		p, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, err
		}
		if p < 0 {
			return nil, fmt.Errorf("letter %c has a negative value", letter)
		}
		v, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		if _, ok := lt.scores[letter]; ok {
			return nil, fmt.Errorf("letter %c is listed twice", letter)
		}
		lt.scores[letter] = p
		if letter == Wildcard {
			continue
		}
		if v == 1 {
			lt.vowels = append(lt.vowels, letter)
		} else {
			lt.consonants = append(lt.consonants, letter)
		}
	}
	// The wildcard is always part of the game, even if a custom table
	// leaves it out.
	if _, ok := lt.scores[Wildcard]; !ok {
		lt.scores[Wildcard] = 0
	}
	sortRunes(lt.vowels)
	sortRunes(lt.consonants)
	log.Debug().Int("vowels", len(lt.vowels)).Int("consonants", len(lt.consonants)).
		Msg("scanned letter table")
	return lt, nil
}

// EnglishLetterTable returns the standard English letter values.
func EnglishLetterTable() *LetterTable {
	lt, err := ScanLetterTable(strings.NewReader(englishCSV))
	if err != nil {
		// The embedded table is part of the binary; this can't happen.
		panic(err)
	}
	return lt
}

func sortRunes(rs []rune) {
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
}

// Score returns the value of a single tile. Letters that are not in the table
// are worth nothing.
func (lt *LetterTable) Score(r rune) int {
	return lt.scores[unicode.ToLower(r)]
}

// WordValue is the sum of the tile values of every letter in the word.
func (lt *LetterTable) WordValue(word string) int {
	score := 0
	for _, r := range word {
		score += lt.Score(r)
	}
	return score
}

// IsVowel returns true if the letter is one of the table's vowels.
func (lt *LetterTable) IsVowel(r rune) bool {
	return containsRune(lt.vowels, unicode.ToLower(r))
}

// IsConsonant returns true if the letter is one of the table's consonants.
func (lt *LetterTable) IsConsonant(r rune) bool {
	return containsRune(lt.consonants, unicode.ToLower(r))
}

// Vowels returns a copy of the vowels, in alphabetical order.
func (lt *LetterTable) Vowels() []rune {
	return append([]rune(nil), lt.vowels...)
}

// Consonants returns a copy of the consonants, in alphabetical order.
func (lt *LetterTable) Consonants() []rune {
	return append([]rune(nil), lt.consonants...)
}

// Class returns the letters that belong to the same class as r: the vowels
// if r is a vowel, the consonants if r is a consonant. It returns nil for the
// wildcard and for letters outside the table.
func (lt *LetterTable) Class(r rune) []rune {
	switch {
	case lt.IsVowel(r):
		return lt.Vowels()
	case lt.IsConsonant(r):
		return lt.Consonants()
	}
	return nil
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
