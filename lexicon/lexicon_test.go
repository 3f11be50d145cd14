package lexicon

import (
	"compress/gzip"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordhand/cache"
	"github.com/domino14/wordhand/config"
)

var sampleWords = []string{"Cat", "bat", " hat ", "", "honey"}

func TestWordList(t *testing.T) {
	is := is.New(t)
	wl := NewWordList("sample", sampleWords)
	is.Equal(wl.Name(), "sample")
	is.Equal(wl.NumWords(), 4)
	is.True(wl.HasWord("cat"))
	is.True(wl.HasWord("hat"))
	is.True(!wl.HasWord("Cat"))
	is.True(!wl.HasWord(""))
}

func TestAcceptAll(t *testing.T) {
	is := is.New(t)
	is.True(AcceptAll{}.HasWord("zzyzx"))
}

func writeText(t *testing.T, dir string) string {
	p := filepath.Join(dir, "words.txt")
	err := os.WriteFile(p, []byte(strings.Join(sampleWords, "\n")+"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func writeGzip(t *testing.T, dir string) string {
	p := filepath.Join(dir, "words.txt.gz")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(strings.Join(sampleWords, "\n"))); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return p
}

func writeSQLite(t *testing.T, dir string) string {
	p := filepath.Join(dir, "words.db")
	db, err := sql.Open("sqlite", p)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Exec("CREATE TABLE words (word TEXT NOT NULL)"); err != nil {
		t.Fatal(err)
	}
	for _, w := range sampleWords {
		if _, err := db.Exec("INSERT INTO words (word) VALUES (?)", w); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func TestLoadFormats(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	for _, p := range []string{writeText(t, dir), writeGzip(t, dir), writeSQLite(t, dir)} {
		wl, err := Load(p)
		is.NoErr(err)
		is.Equal(wl.NumWords(), 4)
		for _, w := range []string{"cat", "bat", "hat", "honey"} {
			is.True(wl.HasWord(w))
		}
	}
}

func TestLoadErrors(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "words.json"))
	is.True(errors.Is(err, ErrUnknownFormat))

	_, err = Load(filepath.Join(dir, "missing.txt"))
	is.True(errors.Is(err, os.ErrNotExist))

	_, err = Load(filepath.Join(dir, "missing.db"))
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestGetUsesCache(t *testing.T) {
	is := is.New(t)
	cache.CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	p := writeText(t, t.TempDir())

	lex1, err := Get(cfg, p)
	is.NoErr(err)
	// Removing the file doesn't matter once the list is cached.
	is.NoErr(os.Remove(p))
	lex2, err := Get(cfg, p)
	is.NoErr(err)
	is.True(lex1 == lex2)
	is.Equal(lex1.Name(), "words")
}
