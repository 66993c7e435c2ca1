package weave

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the Weaver options.
//
//	max_depth: 50
//	strict_arity: true
//	unsupported: log
type Config struct {
	MaxDepth    *int   `yaml:"max_depth,omitempty"`
	StrictArity bool   `yaml:"strict_arity,omitempty"`
	Unsupported string `yaml:"unsupported,omitempty"`
}

// ParseConfig decodes a YAML (or JSON) config.
func ParseConfig(data []byte) (*Config, error) {
	return parseConfig(data, "")
}

func parseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(ErrMsgConfigDecode, path, err)
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgConfigRead, path, err)
	}
	return parseConfig(data, path)
}

// Options converts the config into Weaver options. Unset fields keep
// their defaults.
func (c *Config) Options() ([]Option, error) {
	if c == nil {
		return nil, nil
	}

	strategy, err := ParseUnsupportedStrategy(c.Unsupported)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithStrictArity(c.StrictArity),
		WithUnsupportedStrategy(strategy),
	}
	if c.MaxDepth != nil {
		if *c.MaxDepth < 0 {
			return nil, NewInvalidMaxDepthError(*c.MaxDepth)
		}
		opts = append(opts, WithMaxDepth(*c.MaxDepth))
	}
	return opts, nil
}
