package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypick/alphabet"
	"github.com/katalvlaran/keypick/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "asdfghjkl", cfg.Alphabet)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding)
	assert.False(t, cfg.Logging.Development)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv(config.EnvAlphabet, "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv(config.EnvAlphabet, "")
	path := writeFile(t, "keypick.yml", `
alphabet: jkl
logging:
  level: debug
  development: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jkl", cfg.Alphabet)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding, "unset keys keep their default")
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv(config.EnvAlphabet, "")
	path := writeFile(t, "keypick.toml", `
alphabet = "1234"

[logging]
encoding = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Alphabet)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
}

func TestLoad_EmptyYAML(t *testing.T) {
	t.Setenv(config.EnvAlphabet, "")
	cfg, err := config.Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, file, body string
		want             error
	}{
		{name: "extension", file: "keypick.json", body: `{}`, want: config.ErrUnsupportedFormat},
		{name: "yaml unknown key", file: "k.yaml", body: "alphabett: abc\n"},
		{name: "toml unknown key", file: "k.toml", body: "colour = \"red\"\n"},
		{name: "yaml syntax", file: "k.yaml", body: "alphabet: [\n"},
		{name: "toml syntax", file: "k.toml", body: "alphabet = \n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvAlphabet, "qwer")
	path := writeFile(t, "keypick.yaml", "alphabet: jkl\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "qwer", cfg.Alphabet)
}

func TestSaveLoad(t *testing.T) {
	t.Setenv(config.EnvAlphabet, "")
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := config.Default()
			cfg.Alphabet = "abc"
			cfg.Logging.Level = "warn"

			require.NoError(t, cfg.Save(path))
			got, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}

	err := config.Default().Save(filepath.Join(t.TempDir(), "out.ini"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{name: "too few", mutate: func(c *config.Config) { c.Alphabet = "aaa" }, want: alphabet.ErrTooFewSymbols},
		{name: "unknown symbol", mutate: func(c *config.Config) { c.Alphabet = "ab!" }, want: alphabet.ErrUnknownSymbol},
		{name: "level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }},
		{name: "encoding", mutate: func(c *config.Config) { c.Logging.Encoding = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestParseAlphabet(t *testing.T) {
	cfg := config.Default()
	cfg.Alphabet = "jkjkl"
	a, err := cfg.ParseAlphabet()
	require.NoError(t, err)
	assert.Equal(t, "jkl", a.String())
}
