package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/leapstack-labs/jatoken/internal/morph"
)

// Validate checks the configuration and normalizes dictionary, mode and log
// format names to lower case.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if strings.ContainsAny(c.Delimiter, "\r\n") {
		return fmt.Errorf("delimiter must be a single line, got %q", c.Delimiter)
	}

	dict, err := morph.ParseDictionary(c.Dictionary)
	if err != nil {
		return err
	}
	c.Dictionary = dict

	mode, err := morph.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	c.Mode = mode

	switch f := strings.ToLower(c.LogFormat); f {
	case "":
		c.LogFormat = DefaultLogFormat
	case LogFormatText, LogFormatJSON:
		c.LogFormat = f
	default:
		return fmt.Errorf("unknown log format %q (available: %s, %s)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	if c.UserDict != "" {
		info, err := os.Stat(c.UserDict)
		if err != nil {
			return fmt.Errorf("user dictionary %s: %w", c.UserDict, err)
		}
		if info.IsDir() {
			return fmt.Errorf("user dictionary %s is a directory", c.UserDict)
		}
	}

	return nil
}
