// Package config loads keypick settings from YAML or TOML and turns them into
// the values the other packages consume: an alphabet.Alphabet and a *zap.Logger.
//
// Missing files are not an error; Load returns Default() instead. The
// KEYPICK_ALPHABET environment variable overrides whatever the file says.
//
//	cfg, err := config.Load("keypick.toml")
//	if err != nil { ... }
//	a, err := cfg.ParseAlphabet()
//	log, err := cfg.NewLogger()
package config
