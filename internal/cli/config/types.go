// Package config provides configuration management for the jatoken CLI.
//
// Values come from, in increasing priority: built-in defaults, a YAML config
// file, JATOKEN_* environment variables, and explicitly set command-line flags.
package config

import (
	"github.com/leapstack-labs/jatoken/internal/filter"
	"github.com/leapstack-labs/jatoken/internal/morph"
)

// Config holds all CLI configuration options.
type Config struct {
	Stream         bool   `koanf:"stream"`
	Delimiter      string `koanf:"delimiter"`
	Dictionary     string `koanf:"dictionary"`
	Mode           string `koanf:"mode"`
	UserDict       string `koanf:"user_dict"`
	KeepWhitespace bool   `koanf:"keep_whitespace"`
	Verbose        bool   `koanf:"verbose"`
	LogFormat      string `koanf:"log_format"`
}

// Default configuration values.
const (
	DefaultDelimiter  = filter.DefaultDelimiter
	DefaultDictionary = morph.DefaultDictionary
	DefaultMode       = morph.DefaultMode
	DefaultLogFormat  = LogFormatText
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "JATOKEN_"

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Delimiter:  DefaultDelimiter,
		Dictionary: DefaultDictionary,
		Mode:       DefaultMode,
		LogFormat:  DefaultLogFormat,
	}
}

// AnalyzerOptions returns the tokenizer options described by the config.
func (c *Config) AnalyzerOptions() morph.Options {
	return morph.Options{
		Dictionary:     c.Dictionary,
		Mode:           c.Mode,
		UserDict:       c.UserDict,
		KeepWhitespace: c.KeepWhitespace,
	}
}
