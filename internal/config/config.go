package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	u "github.com/araddon/gou"
	"github.com/lytics/confl"
)

// Config holds the settings shared by the command line tools. Every field
// can also come from a confl file, e.g.
//
//	log_level = debug
//	epsilon   = "_"
//	format    = dot
type Config struct {
	LogLevel string `json:"log_level"` // [debug,info,warn,error]
	Epsilon  string `json:"epsilon"`   // lambda transition marker, one character
	Format   string `json:"format"`    // [text,dot,table]
	Color    bool   `json:"color"`     // colorize log output on a terminal
}

// Formats accepted in Config.Format.
const (
	FormatText  = "text"
	FormatDOT   = "dot"
	FormatTable = "table"
)

func Default() *Config {
	return &Config{LogLevel: "warn", Epsilon: "_", Format: FormatText}
}

// LoadConfigFromFile reads a confl formatted config file from disk, with
// environment variables expanded. Unset fields keep their defaults.
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(data))
}

// LoadConfig decodes a confl formatted string.
func LoadConfig(conf string) (*Config, error) {
	c := Default()
	if _, err := confl.Decode(os.ExpandEnv(conf), c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Epsilon) != 1 {
		return fmt.Errorf("epsilon marker must be one character, got %q", c.Epsilon)
	}
	switch c.Format {
	case FormatText, FormatDOT, FormatTable:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return nil
}

// EpsilonRune returns the lambda marker character.
func (c *Config) EpsilonRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Epsilon)
	return r
}

// SetupLogging configures the gou logger from the config.
func (c *Config) SetupLogging() {
	u.SetupLogging(c.LogLevel)
	if c.Color {
		u.SetColorIfTerminal()
	}
}
