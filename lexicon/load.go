package lexicon

import (
	"bufio"
	"compress/gzip"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/wordhand/cache"
	"github.com/domino14/wordhand/config"
)

var ErrUnknownFormat = errors.New("unknown lexicon format")

// Get returns the lexicon at path, loading it at most once per process.
func Get(cfg *config.Config, path string) (Lexicon, error) {
	obj, err := cache.Load(cfg, "lexicon:"+path, func(cfg *config.Config, key string) (any, error) {
		return Load(path)
	})
	if err != nil {
		return nil, err
	}
	return obj.(Lexicon), nil
}

// Load reads a lexicon, picking the format from the file extension:
// .txt for one word per line, .gz for a gzipped word list, and .db or
// .sqlite for a SQLite database with a words(word) table.
func Load(path string) (*WordList, error) {
	var (
		words []string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", "":
		words, err = readWordFile(path, false)
	case ".gz":
		words, err = readWordFile(path, true)
	case ".db", ".sqlite", ".sqlite3":
		words, err = readSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading lexicon %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	wl := NewWordList(name, words)
	log.Info().Str("lexicon", name).Int("words", wl.NumWords()).Msg("loaded word list")
	return wl, nil
}

func readWordFile(path string, gzipped bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return ReadWords(r)
}

// ReadWords reads one word per line.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func readSQLite(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM words")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
