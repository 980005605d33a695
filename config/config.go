// Package config handles bibsym.toml capacity configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/bibsym/cite"
	"github.com/chazu/bibsym/entry"
	"github.com/chazu/bibsym/symtab"
)

// FileName is the configuration file looked up by Load and FindAndLoad.
const FileName = "bibsym.toml"

// Config represents a bibsym.toml file. Zero values mean "use the default".
type Config struct {
	Pool    PoolConfig    `toml:"pool"`
	Hash    HashConfig    `toml:"hash"`
	Cites   CitesConfig   `toml:"cites"`
	Entries EntriesConfig `toml:"entries"`

	// Path is the file the configuration was read from (set at load time).
	Path string `toml:"-"`
}

// PoolConfig sizes the string pool.
type PoolConfig struct {
	Size       int  `toml:"size"`
	MaxStrings int  `toml:"max-strings"`
	Slack      *int `toml:"slack"`
}

// HashConfig sizes the symbol hash table.
type HashConfig struct {
	Size int `toml:"size"`
}

// CitesConfig sizes the citation list.
type CitesConfig struct {
	MaxCites int `toml:"max-cites"`
}

// EntriesConfig sizes entry and global string variables and field storage.
type EntriesConfig struct {
	EntStrSize  int `toml:"ent-str-size"`
	GlobStrSize int `toml:"glob-str-size"`
	MaxFields   int `toml:"max-fields"`
}

// Default returns a configuration with every capacity filled in.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Pool.Size == 0 {
		c.Pool.Size = symtab.DefaultPoolSize
	}
	if c.Pool.MaxStrings == 0 {
		c.Pool.MaxStrings = symtab.DefaultMaxStrings
	}
	if c.Pool.Slack == nil {
		slack := symtab.DefaultSlack
		c.Pool.Slack = &slack
	}
	if c.Hash.Size == 0 {
		c.Hash.Size = symtab.DefaultHashSize(c.Pool.MaxStrings)
	}
	if c.Cites.MaxCites == 0 {
		c.Cites.MaxCites = cite.DefaultMaxCites
	}
	if c.Entries.EntStrSize == 0 {
		c.Entries.EntStrSize = entry.DefaultEntStrSize
	}
	if c.Entries.GlobStrSize == 0 {
		c.Entries.GlobStrSize = entry.DefaultGlobStrSize
	}
	if c.Entries.MaxFields == 0 {
		c.Entries.MaxFields = entry.DefaultMaxFields
	}
}

// Limits returns the pool and hash table capacities.
func (c *Config) Limits() symtab.Limits {
	return symtab.Limits{
		PoolSize:   c.Pool.Size,
		MaxStrings: c.Pool.MaxStrings,
		HashSize:   c.Hash.Size,
		Slack:      *c.Pool.Slack,
	}
}

// Validate rejects configurations that cannot back a run.
func (c *Config) Validate() error {
	if err := c.Limits().Validate(); err != nil {
		return err
	}
	if c.Hash.Size < c.Pool.MaxStrings-1 {
		return fmt.Errorf("hash size %d cannot hold %d strings", c.Hash.Size, c.Pool.MaxStrings-1)
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"max-cites", c.Cites.MaxCites},
		{"ent-str-size", c.Entries.EntStrSize},
		{"glob-str-size", c.Entries.GlobStrSize},
		{"max-fields", c.Entries.MaxFields},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", f.name, f.v)
		}
	}
	return nil
}

// Parse decodes a configuration from TOML text and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load parses bibsym.toml from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// FindAndLoad walks up from startDir to find a bibsym.toml file, then
// loads it. Without one it returns the defaults.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
