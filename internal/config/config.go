// Package config loads datatable settings from an optional TOML file.
//
// A config file looks like:
//
//	levels    = [100000]
//	page_size = 20
//	seed      = 42
//	lookback  = "720h"
//
// Every key is optional. Command-line flags override file values.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/datatable/pkg/errors"
	"github.com/matzehuels/datatable/pkg/makedata"
	"github.com/matzehuels/datatable/pkg/table"
)

const (
	appName  = "datatable"
	fileName = "config.toml"
)

// DefaultLevels is the forest shape used when nothing else is configured.
var DefaultLevels = []int{100000}

// Config holds user-tunable settings.
type Config struct {
	Levels   []int    `toml:"levels"`
	PageSize int      `toml:"page_size"`
	Seed     uint64   `toml:"seed"`
	Lookback Duration `toml:"lookback"`
}

// Duration is a time.Duration that decodes from strings like "720h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Levels:   append([]int(nil), DefaultLevels...),
		PageSize: table.DefaultPageSize,
		Lookback: Duration{makedata.DefaultLookback},
	}
}

// Load reads path on top of [Default]. A missing file is not an error when
// path is the default location (see [Path]); an explicitly named file must
// exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if err := errors.ValidateLevels(c.Levels); err != nil {
		return err
	}
	if err := errors.ValidatePageSize(c.PageSize, table.PageSizes); err != nil {
		return err
	}
	if c.Lookback.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "lookback must be positive, got %s", c.Lookback.Duration)
	}
	return nil
}

// Path returns the default config file location using the XDG standard
// (~/.config/datatable/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Generator builds a record generator from c. A zero seed means random.
func (c Config) Generator(opts ...makedata.Option) *makedata.Generator {
	base := []makedata.Option{makedata.WithLookback(c.Lookback.Duration)}
	if c.Seed != 0 {
		base = append(base, makedata.WithSeed(c.Seed))
	}
	return makedata.New(append(base, opts...)...)
}
