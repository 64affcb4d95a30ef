// SPDX-License-Identifier: MIT
// Package: keypick/config
//
// config.go — Config, defaults, file loading and environment overrides.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keypick/alphabet"
)

// EnvAlphabet overrides Config.Alphabet when set and non-empty.
const EnvAlphabet = "KEYPICK_ALPHABET"

var (
	// ErrUnsupportedFormat is returned by Load for extensions other than
	// .yaml, .yml and .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid wraps every Validate failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete keypick configuration.
type Config struct {
	// Alphabet is the character pool, in label order (see alphabet.Parse).
	Alphabet string        `yaml:"alphabet" toml:"alphabet"`
	Logging  LoggingConfig `yaml:"logging" toml:"logging"`
}

// LoggingConfig configures the zap logger built by NewLogger.
type LoggingConfig struct {
	Level       string `yaml:"level" toml:"level"`             // debug, info, warn, error
	Encoding    string `yaml:"encoding" toml:"encoding"`       // console, json
	Development bool   `yaml:"development" toml:"development"` // zap development config
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Alphabet: alphabet.HomeRowPool,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path on top of Default(), picking the decoder from the file
// extension, then applies environment overrides. Unknown keys are rejected by
// both decoders. A missing file yields the
// defaults (plus overrides). Load does not call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	unmarshal, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	} else if err = unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes c to path in the format implied by its extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("config: encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: creating %s: %w", dir, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	return nil
}

// Validate checks every field without building anything.
func (c *Config) Validate() error {
	if _, err := c.ParseAlphabet(); err != nil {
		return fmt.Errorf("%w: alphabet: %w", ErrInvalid, err)
	}
	if _, err := c.Logging.level(); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}
	switch c.Logging.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.encoding %q", ErrInvalid, c.Logging.Encoding)
	}

	return nil
}

// ParseAlphabet runs alphabet.Parse over the configured pool.
func (c *Config) ParseAlphabet() (alphabet.Alphabet, error) {
	return alphabet.Parse(c.Alphabet)
}

func (c *Config) applyEnvOverrides() {
	if pool := os.Getenv(EnvAlphabet); pool != "" {
		c.Alphabet = pool
	}
}

func decoderFor(path string) (func([]byte, *Config) error, error) {
	switch ext(path) {
	case ".yaml", ".yml":
		return func(data []byte, c *Config) error {
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}, nil
	case ".toml":
		return func(data []byte, c *Config) error {
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			return dec.Decode(c)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
