// Package config provides Viper-based configuration loading for the board tools.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/cluedo/internal/game/dice"
)

// BoardConfig locates the board description.
type BoardConfig struct {
	// Path is a .board file or a directory of them. May be empty when the
	// caller supplies the path another way.
	Path string `mapstructure:"path"`
	// Delimiter closes every grid row.
	Delimiter string `mapstructure:"delimiter"`
}

// DelimiterRune returns the delimiter as a rune.
//
// Precondition: Delimiter must be exactly one character.
func (b BoardConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(b.Delimiter)
	return r
}

// MovementConfig holds movement rule switches.
type MovementConfig struct {
	// BlockOccupied refuses moves that end on another player's cell.
	BlockOccupied bool `mapstructure:"block_occupied"`
}

// PlannerConfig holds path planner settings.
type PlannerConfig struct {
	// DefaultRoll is the dice expression for a turn's movement budget.
	DefaultRoll string `mapstructure:"default_roll"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output lists zap output paths. Empty means stderr.
	Output []string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Board    BoardConfig    `mapstructure:"board"`
	Movement MovementConfig `mapstructure:"movement"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	if err := validateBoard(c.Board); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePlanner(c.Planner); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBoard(b BoardConfig) error {
	if utf8.RuneCountInString(b.Delimiter) != 1 {
		return fmt.Errorf("board.delimiter must be a single character, got %q", b.Delimiter)
	}
	if strings.ContainsAny(b.Delimiter, " ._/-#") {
		return fmt.Errorf("board.delimiter %q clashes with a grid cell character", b.Delimiter)
	}
	return nil
}

func validatePlanner(p PlannerConfig) error {
	if _, err := dice.Parse(p.DefaultRoll); err != nil {
		return fmt.Errorf("planner.default_roll: %w", err)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with CLUEDO_ prefix
	v.SetEnvPrefix("CLUEDO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic("config.Default: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.path", "")
	v.SetDefault("board.delimiter", "|")

	v.SetDefault("movement.block_occupied", true)

	v.SetDefault("planner.default_roll", dice.DefaultMovement)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", []string{"stderr"})
}
