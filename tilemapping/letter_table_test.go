package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestEnglishLetterTableScores(t *testing.T) {
	is := is.New(t)
	lt := EnglishLetterTable()

	is.Equal(lt.Score('a'), 1)
	is.Equal(lt.Score('d'), 2)
	is.Equal(lt.Score('k'), 5)
	is.Equal(lt.Score('q'), 10)
	is.Equal(lt.Score('Z'), 10)
	is.Equal(lt.Score(Wildcard), 0)
	is.Equal(lt.Score('7'), 0)
}

func TestWordValue(t *testing.T) {
	is := is.New(t)
	lt := EnglishLetterTable()
	type testcase struct {
		word string
		pts  int
	}
	for _, tc := range []testcase{
		{"", 0},
		{"cookie", 12},
		{"CoOKIE", 12},
		{"h!ney", 10},
		{"!", 0},
	} {
		is.Equal(lt.WordValue(tc.word), tc.pts)
	}
}

func TestLetterClasses(t *testing.T) {
	lt := EnglishLetterTable()

	assert.Equal(t, []rune("aeiou"), lt.Vowels())
	assert.Equal(t, []rune("bcdfghjklmnpqrstvwxyz"), lt.Consonants())
	assert.True(t, lt.IsVowel('E'))
	assert.False(t, lt.IsVowel('b'))
	assert.True(t, lt.IsConsonant('b'))
	assert.False(t, lt.IsConsonant(Wildcard))
	assert.False(t, lt.IsVowel(Wildcard))
	assert.Nil(t, lt.Class(Wildcard))
	assert.Equal(t, lt.Vowels(), lt.Class('u'))
	assert.Equal(t, lt.Consonants(), lt.Class('x'))
}

func TestClassIsACopy(t *testing.T) {
	is := is.New(t)
	lt := EnglishLetterTable()
	v := lt.Vowels()
	v[0] = 'z'
	is.Equal(lt.Vowels()[0], 'a')
}

func TestScanLetterTable(t *testing.T) {
	is := is.New(t)
	lt, err := ScanLetterTable(strings.NewReader("A,1,1\nb,2,0\nc,5,0\n"))
	is.NoErr(err)
	is.Equal(lt.Score('a'), 1)
	is.Equal(lt.Score('c'), 5)
	// The wildcard is added even when missing from the records.
	is.Equal(lt.Score(Wildcard), 0)
	is.Equal(lt.Vowels(), []rune{'a'})
	is.Equal(lt.Consonants(), []rune{'b', 'c'})
}

func TestScanLetterTableErrors(t *testing.T) {
	is := is.New(t)
	for _, data := range []string{
		"a,1\n",
		"a,x,1\n",
		"a,1,y\n",
		"ab,1,1\n",
		"a,-1,1\n",
		"a,1,1\na,2,1\n",
	} {
		_, err := ScanLetterTable(strings.NewReader(data))
		is.True(err != nil)
	}
}
