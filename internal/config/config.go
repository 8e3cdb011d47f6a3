// Package config loads import settings from a file and the environment.
package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/coopex/escala-go/pkg/escala/models"
	"github.com/coopex/escala-go/pkg/escala/parser"
)

// EnvPrefix marks environment overrides, e.g. ESCALA_LOGGING__LEVEL=debug.
const EnvPrefix = "ESCALA_"

type Config struct {
	// Aliases adds header aliases per field, tried after the built-in ones.
	Aliases map[string][]string `json:"aliases"`
	// Colors enables name cell fill colors.
	Colors  bool          `json:"colors"`
	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Colors:  true,
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path (optional) and applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(defaultsProvider{}, nil); err != nil {
		return nil, err
	}

	if path != "" {
		var p koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			p = yaml.Parser()
		case ".json":
			p = json.Parser()
		case ".toml":
			p = TOMLParser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), p); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field names and the log level.
func (c *Config) Validate() error {
	for field := range c.Aliases {
		if !models.Field(field).Valid() {
			return fmt.Errorf("aliases: unknown field %q", field)
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	return nil
}

// AliasTable returns the built-in aliases extended with the configured ones.
func (c *Config) AliasTable() (parser.AliasTable, error) {
	table := parser.DefaultAliases()
	fields := make([]string, 0, len(c.Aliases))
	for f := range c.Aliases {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		var err error
		table, err = table.Extend(models.Field(f), c.Aliases[f]...)
		if err != nil {
			return parser.AliasTable{}, err
		}
	}
	return table, nil
}

// defaultsProvider feeds Default into koanf as the lowest layer.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("defaults provider does not support ReadBytes")
}

func (defaultsProvider) Read() (map[string]interface{}, error) {
	d := Default()
	return map[string]interface{}{
		"colors": d.Colors,
		"logging": map[string]interface{}{
			"level": d.Logging.Level,
		},
	}, nil
}
