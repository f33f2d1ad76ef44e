package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/suderio/emodice/internal/dice"
	"github.com/suderio/emodice/internal/logging"
)

// Configuration keys, shared by the config file, EMODICE_* environment
// variables and command flags.
const (
	KeyMaxDice  = "max_dice"
	KeyUI       = "ui"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeySeed     = "seed"
	KeyDataDir  = "data_dir"
)

// User interface modes for the Yahtzee game.
const (
	UITUI   = "tui"
	UIPlain = "plain"
)

// MaxDiceLimit caps max_dice.
const MaxDiceLimit = 100

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	MaxDice  int
	UI       string
	LogLevel string
	LogFile  string
	Seed     uint64
	DataDir  string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxDice, dice.DefaultMaxDice)
	v.SetDefault(KeyUI, UITUI)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDataDir, "")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	c := Config{
		MaxDice:  v.GetInt(KeyMaxDice),
		UI:       strings.ToLower(strings.TrimSpace(v.GetString(KeyUI))),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Seed:     v.GetUint64(KeySeed),
		DataDir:  v.GetString(KeyDataDir),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.MaxDice < 1 || c.MaxDice > MaxDiceLimit {
		return fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalid, KeyMaxDice, MaxDiceLimit, c.MaxDice)
	}
	if c.UI != UITUI && c.UI != UIPlain {
		return fmt.Errorf("%w: %s must be %q or %q, got %q", ErrInvalid, KeyUI, UITUI, UIPlain, c.UI)
	}
	return nil
}

// Source returns the randomness for this run: seeded when a seed is set.
func (c Config) Source() dice.Source {
	if c.Seed == 0 {
		return dice.CryptoSource{}
	}
	return dice.NewSeededSource(c.Seed)
}

// DataDirs is the lookup order for game data, before the embedded copy.
func (c Config) DataDirs() []string {
	if c.DataDir == "" {
		return nil
	}
	return []string{c.DataDir}
}

// Logging maps the config onto logger options. Terminal output stays on;
// the full-screen UI mutes it itself.
func (c Config) Logging() logging.Options {
	return logging.Options{
		Level: c.LogLevel,
		File:  c.LogFile,
	}
}
