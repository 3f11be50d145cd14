package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLexiconPath = "lexicon-path"
	ConfigHandSize    = "hand-size"
	ConfigDebug       = "debug"
	ConfigRNGSeed     = "rng-seed"
	ConfigHistoryFile = "history-file"
	ConfigCPUProfile  = "cpu-profile"
)

const (
	DefaultHandSize    = 7
	DefaultLexiconPath = "./data/words.txt"
	DefaultHistoryFile = "/tmp/wordhand_readline.tmp"
)

type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigLexiconPath, DefaultLexiconPath)
	v.SetDefault(ConfigHandSize, DefaultHandSize)
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigRNGSeed, "")
	v.SetDefault(ConfigHistoryFile, DefaultHistoryFile)
	v.SetDefault(ConfigCPUProfile, "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("wordhand")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfig returns a config with default values and environment
// overrides, without reading flags or a config file.
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load reads the config from the command-line args, the environment and an
// optional config.yaml in the user config directory, in that order of
// precedence.
func (c *Config) Load(args []string) error {
	c.Viper = newViper()

	fs := pflag.NewFlagSet("wordhand", pflag.ContinueOnError)
	fs.String(ConfigLexiconPath, DefaultLexiconPath, "path to the word list (.txt, .gz, .db or .sqlite)")
	fs.Int(ConfigHandSize, DefaultHandSize, "number of tiles in a hand, wildcard included")
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigRNGSeed, "", "seed for tile draws; empty uses system entropy")
	fs.String(ConfigHistoryFile, DefaultHistoryFile, "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	if cfgdir, err := os.UserConfigDir(); err == nil {
		c.AddConfigPath(filepath.Join(cfgdir, "wordhand"))
	}
	c.SetConfigName("config")
	c.SetConfigType("yaml")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Debug().Msg("no config file found, using flags and environment")
	}
	return nil
}

// AdjustRelativePaths makes the lexicon path absolute relative to basepath,
// if it isn't already absolute.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(ConfigLexiconPath)
	if p == "" || filepath.IsAbs(p) {
		return
	}
	// Leave it alone if it resolves from the working directory.
	if _, err := os.Stat(p); err == nil {
		return
	}
	c.Set(ConfigLexiconPath, filepath.Join(basepath, p))
}

// SanitizedSettings returns the settings suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if s, ok := settings[ConfigRNGSeed].(string); ok && s != "" {
		settings[ConfigRNGSeed] = "(set)"
	}
	return settings
}
