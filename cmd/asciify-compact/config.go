package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko"
)

// Config is the build configuration, usually read from a TOML file:
//
//	[output]
//	dir = "tables/data"
//
//	[sources]
//	gemoji = "gemoji/db/emoji.json"   # default: embedded name file
//	emojione = "emojione/emoji1.json"
//	emojidata = "emoji-data/emoji.json"
//	prefixes-only = false
//
//	[tracing]
//	adapter = "go"
//	level = "Info"
//	destination = "Stderr"
type Config struct {
	Output  Output  `toml:"output"`
	Sources Sources `toml:"sources"`
	Tracing Tracing `toml:"tracing"`
}

// Output configures where artifacts are written.
type Output struct {
	Dir string `toml:"dir"`
}

// Sources configures the raw table inputs.
type Sources struct {
	Gemoji       string `toml:"gemoji"`
	EmojiOne     string `toml:"emojione"`
	EmojiData    string `toml:"emojidata"`
	PrefixesOnly bool   `toml:"prefixes-only"`
}

// Tracing configures schuko tracing.
type Tracing struct {
	Adapter     string `toml:"adapter"`
	Level       string `toml:"level"`
	Destination string `toml:"destination"`
}

// LoadConfig parses a TOML configuration file. An empty path yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	}
	c.InitDefaults()
	return c, nil
}

// --- schuko.Configuration --------------------------------------------------

var _ schuko.Configuration = (*Config)(nil)

// InitDefaults fills in unset values.
func (c *Config) InitDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Tracing.Adapter == "" {
		c.Tracing.Adapter = "go"
	}
	if c.Tracing.Level == "" {
		c.Tracing.Level = "Info"
	}
}

// GetString maps the keys tracing packages ask for onto the configuration.
// Trace levels apply to the root tracer and to every selected tracer.
func (c *Config) GetString(key string) string {
	switch key {
	case "tracing.adapter", "tracing":
		return c.Tracing.Adapter
	case "tracing.destination":
		return c.Tracing.Destination
	case "output.dir":
		return c.Output.Dir
	case "sources.gemoji":
		return c.Sources.Gemoji
	case "sources.emojione":
		return c.Sources.EmojiOne
	case "sources.emojidata":
		return c.Sources.EmojiData
	}
	if strings.HasPrefix(key, "tracelevel") {
		return c.Tracing.Level
	}
	return ""
}

// IsSet is true for keys with a non-empty value.
func (c *Config) IsSet(key string) bool {
	return c.GetString(key) != "" || c.GetBool(key)
}

// GetInt returns the integer value of key, or 0.
func (c *Config) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

// GetBool returns the boolean value of key.
func (c *Config) GetBool(key string) bool {
	if key == "sources.prefixes-only" {
		return c.Sources.PrefixesOnly
	}
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

// IsInteractive is always false.
func (c *Config) IsInteractive() bool {
	return false
}
