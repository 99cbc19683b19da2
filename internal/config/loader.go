package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LAUREL_CONFIG is set
//  3. env (prefix LAUREL_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("LAUREL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: LAUREL_ADDR, LAUREL_QUEUE_SIZE, ...
	// Keys map to the koanf tags on the struct (underscores preserved).
	envProvider := env.Provider("LAUREL_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "laurel_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MultiLabelThreshold <= 0 || c.MultiLabelThreshold > 1:
		return fmt.Errorf("%w: multi_label_threshold must be in (0,1]", ErrInvalidConfig)
	case c.ReadyPercentage <= 0 || c.ReadyPercentage > 100:
		return fmt.Errorf("%w: ready_percentage must be in (0,100]", ErrInvalidConfig)
	case c.MaxTextBytes <= 0:
		return fmt.Errorf("%w: max_text_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
