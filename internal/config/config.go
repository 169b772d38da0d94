// SPDX-License-Identifier: MIT

// Package config loads CLI settings from defaults, an optional YAML file and
// VERSEGRAPH_* environment variables, in increasing order of precedence.
// Command-line flags bound to the same viper instance override all three.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/versegraph/builder"
	"github.com/katalvlaran/versegraph/embedding"
)

// EnvPrefix prefixes every environment override, e.g.
// VERSEGRAPH_EMBEDDING_API_KEY or VERSEGRAPH_GRAPH_KMAX.
const EnvPrefix = "VERSEGRAPH"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Log       LogConfig       `mapstructure:"log"`
}

// DataConfig locates input and output files.
type DataConfig struct {
	Corpus      string `mapstructure:"corpus"`
	Positions   string `mapstructure:"positions"`
	Connections string `mapstructure:"connections"`
	Colors      string `mapstructure:"colors"`
}

// GraphConfig mirrors the builder options. Workers 0 means GOMAXPROCS.
type GraphConfig struct {
	KMin    int `mapstructure:"kmin"`
	KMax    int `mapstructure:"kmax"`
	Nearest int `mapstructure:"nearest"`
	Workers int `mapstructure:"workers"`
}

// EmbeddingConfig configures the embedding client.
type EmbeddingConfig struct {
	Provider   string `mapstructure:"provider"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
	Workers    int    `mapstructure:"workers"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key on v so environment overrides resolve
// during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.corpus", "data/corpus.yaml")
	v.SetDefault("data.positions", "data/positions.json")
	v.SetDefault("data.connections", "data/connections.json")
	v.SetDefault("data.colors", "data/colors.json")

	v.SetDefault("graph.kmin", builder.DefaultKMin)
	v.SetDefault("graph.kmax", builder.DefaultKMax)
	v.SetDefault("graph.nearest", builder.DefaultNearest)
	v.SetDefault("graph.workers", 0)

	v.SetDefault("embedding.provider", embedding.ProviderHuggingFace)
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.base_url", "")
	v.SetDefault("embedding.model", embedding.DefaultModel)
	v.SetDefault("embedding.dimensions", 0)
	v.SetDefault("embedding.workers", embedding.DefaultWorkers)

	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.level", "info")
}

// Load resolves the configuration on v. path may be empty.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first setting no command could run with.
func (c *Config) Validate() error {
	switch {
	case c.Graph.KMin < 0 || c.Graph.KMax < 0:
		return fmt.Errorf("%w: graph bounds must be non-negative (kmin=%d, kmax=%d)", ErrInvalidConfig, c.Graph.KMin, c.Graph.KMax)
	case c.Graph.KMin > c.Graph.KMax:
		return fmt.Errorf("%w: graph.kmin %d exceeds graph.kmax %d", ErrInvalidConfig, c.Graph.KMin, c.Graph.KMax)
	case c.Graph.Nearest < 0:
		return fmt.Errorf("%w: graph.nearest must be non-negative", ErrInvalidConfig)
	case c.Graph.Workers < 0:
		return fmt.Errorf("%w: graph.workers must be non-negative", ErrInvalidConfig)
	case c.Embedding.Workers < 1:
		return fmt.Errorf("%w: embedding.workers must be at least 1", ErrInvalidConfig)
	case c.Data.Corpus == "" || c.Data.Positions == "":
		return fmt.Errorf("%w: data.corpus and data.positions are required", ErrInvalidConfig)
	}

	return nil
}

// ValidateEmbedding checks the settings only the coordinates command needs.
func (c *Config) ValidateEmbedding() error {
	if c.Embedding.APIKey == "" {
		return fmt.Errorf("%w: embedding.api_key is required (set %s_EMBEDDING_API_KEY)", ErrInvalidConfig, EnvPrefix)
	}
	if c.Embedding.Provider == embedding.ProviderHuggingFace && c.Embedding.BaseURL == "" {
		return fmt.Errorf("%w: embedding.base_url is required for provider %s", ErrInvalidConfig, embedding.ProviderHuggingFace)
	}

	return nil
}
