package hand

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewDropsEmptyCounts(t *testing.T) {
	is := is.New(t)
	h := New(map[rune]int{'a': 1, 'B': 2, 'c': 0, 'd': -1})
	is.Equal(h.Counts(), map[rune]int{'a': 1, 'b': 2})
	is.Equal(h.Len(), 3)
}

func TestNewCopiesItsInput(t *testing.T) {
	is := is.New(t)
	counts := map[rune]int{'a': 1}
	h := New(counts)
	counts['a'] = 5
	is.Equal(h.Count('a'), 1)
}

func TestFromString(t *testing.T) {
	is := is.New(t)
	h := FromString("Hello!")
	is.Equal(h.Counts(), map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1, '!': 1})
	is.Equal(h.Len(), 6)
	is.True(h.Has('l'))
	is.True(!h.Has('z'))
}

func TestString(t *testing.T) {
	is := is.New(t)
	is.Equal(FromString("!lxale").String(), "a e l l x !")
	is.Equal(FromString("").String(), "")
	is.Equal(FromString("!").String(), "!")
}

func TestEqual(t *testing.T) {
	is := is.New(t)
	is.True(FromString("ab!").Equal(FromString("!ba")))
	is.True(!FromString("ab!").Equal(FromString("ab")))
	is.True(!FromString("aab").Equal(FromString("abb")))
	is.True(Hand{}.Equal(FromString("")))
}

type consumeTest struct {
	hand     string
	word     string
	expected map[rune]int
}

func TestConsume(t *testing.T) {
	is := is.New(t)
	for _, tc := range []consumeTest{
		{"aqllmui", "quail", map[rune]int{'l': 1, 'm': 1}},
		{"aqllmui", "QUAIL", map[rune]int{'l': 1, 'm': 1}},
		{"evlnnooo", "evil", map[rune]int{'n': 2, 'o': 3}},
		{"hello", "", map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}},
		// letters the hand lacks are ignored
		{"hell", "zzz", map[rune]int{'h': 1, 'e': 1, 'l': 2}},
		// overdrawing never goes negative
		{"hel", "hhhhlll", map[rune]int{'e': 1}},
		{"ab!", "ab!", map[rune]int{}},
	} {
		before := FromString(tc.hand)
		after := before.Consume(tc.word)
		is.Equal(after.Counts(), tc.expected)
		// the source hand is left alone
		is.True(before.Equal(FromString(tc.hand)))
	}
}

func TestConsumeNeverKeepsEmptyEntries(t *testing.T) {
	is := is.New(t)
	rng := NewRandSource([]byte("consume"))
	hands := []string{"aeiou!", "bbcc!", "qwertyuiop", "zz"}
	words := []string{"a", "bcb", "xyzzy", "!!!", "ee", "QWERTYUIOPQ"}
	for i := 0; i < 200; i++ {
		h := FromString(hands[rng.Intn(len(hands))])
		w := words[rng.Intn(len(words))]
		for r, ct := range h.Consume(w).Counts() {
			is.True(ct >= 1) // every remaining letter is still held
			is.True(r != 0)
		}
	}
}

func TestReplace(t *testing.T) {
	is := is.New(t)
	h := FromString("hello")
	is.Equal(h.Replace('l', 'x').Counts(), map[rune]int{'h': 1, 'e': 1, 'x': 2, 'o': 1})
	is.Equal(h.Replace('z', 'x').Counts(), h.Counts())
	is.Equal(h.Replace('l', 'h').Counts(), map[rune]int{'h': 3, 'e': 1, 'o': 1})
	is.Equal(h.Count('l'), 2)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	h := FromString("abc")
	c := h.Copy()
	is.True(c.Equal(h))
	c.Counts()['a'] = 9
	is.Equal(c.Count('a'), 1)
}
