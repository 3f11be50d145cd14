package config

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigHandSize), DefaultHandSize)
	is.Equal(cfg.GetString(ConfigLexiconPath), DefaultLexiconPath)
	is.Equal(cfg.GetBool(ConfigDebug), false)
	is.Equal(cfg.GetString(ConfigRNGSeed), "")
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDHAND_HAND_SIZE", "9")
	t.Setenv("WORDHAND_RNG_SEED", "abc")
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigHandSize), 9)
	is.Equal(cfg.GetString(ConfigRNGSeed), "abc")
	is.Equal(cfg.SanitizedSettings()[ConfigRNGSeed], "(set)")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg := &Config{}
	err := cfg.Load([]string{"--hand-size=5", "--debug", "--lexicon-path", "/words.txt"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigHandSize), 5)
	is.True(cfg.GetBool(ConfigDebug))
	is.Equal(cfg.GetString(ConfigLexiconPath), "/words.txt")
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Set(ConfigLexiconPath, "does/not/exist.txt")
	cfg.AdjustRelativePaths("/opt/wordhand")
	is.Equal(cfg.GetString(ConfigLexiconPath), filepath.Join("/opt/wordhand", "does/not/exist.txt"))

	cfg.Set(ConfigLexiconPath, "/abs/words.txt")
	cfg.AdjustRelativePaths("/opt/wordhand")
	is.Equal(cfg.GetString(ConfigLexiconPath), "/abs/words.txt")
}
