package stf

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultMaxDepth is the nesting depth used when Config.MaxDepth is zero.
	DefaultMaxDepth = 512

	// DefaultMaxNodeSize is the metadata or data size limit used when Config.MaxNodeSize is zero.
	// It is 128MB.
	DefaultMaxNodeSize = 1 << 27
)

// Config defines limits for Encoders and Decoders.
// Zero values are replaced with defaults.
//
// Limits only guard against hostile or corrupt input; they never change the encoding.
type Config struct {
	// MaxDepth is the deepest a Node may be nested, counting the root as depth 1.
	MaxDepth int `toml:"max_depth"`

	// MaxNodeSize is the largest metadata or data range a single Node may have.
	MaxNodeSize uint32 `toml:"max_node_size"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	return (*Config)(nil).copyAndFill()
}

// LoadConfig reads a Config from the TOML file at path. Unset fields take their defaults.
//
//	max_depth = 64
//	max_node_size = 1048576
func LoadConfig(path string) (*Config, error) {
	config := new(Config)
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return config.copyAndFill(), nil
}

// Validate reports fields that can never be satisfied.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

func (c *Config) String() string {
	c = c.copyAndFill()
	return fmt.Sprintf("Config(MaxDepth: %d, MaxNodeSize: %d)", c.MaxDepth, c.MaxNodeSize)
}

func (c *Config) copyAndFill() *Config {
	config := new(Config)
	if c != nil {
		*config = *c
	}

	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}

	if config.MaxNodeSize == 0 {
		config.MaxNodeSize = DefaultMaxNodeSize
	}

	return config
}
