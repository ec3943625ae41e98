// Package config loads the game settings from defaults, an optional config
// file and KLONDIKE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "KLONDIKE"

// Config holds the settings of a game session.
type Config struct {
	// Seed of the shuffle. Zero picks a new one on every run.
	Seed int64 `mapstructure:"seed"`

	// ShowFoundations and ShowDeck display those piles from the start,
	// instead of waiting for the first move that involves them.
	ShowFoundations bool `mapstructure:"show_foundations"`
	ShowDeck        bool `mapstructure:"show_deck"`

	// Colour prints red suits in red.
	Colour bool `mapstructure:"colour"`

	// Verbosity is the klog -v level.
	Verbosity int `mapstructure:"verbosity" validate:"gte=0,lte=10"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("show_foundations", false)
	v.SetDefault("show_deck", false)
	v.SetDefault("colour", true)
	v.SetDefault("verbosity", 0)
}

// Load reads the configuration. If path is not empty the file must exist;
// its format is taken from the extension (yaml, toml, json, ...).
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the field constraints of cfg.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("invalid config: %w", err)
}
