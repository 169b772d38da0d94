// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/versegraph/builder"
	"github.com/katalvlaran/versegraph/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, builder.DefaultKMin, cfg.Graph.KMin)
	assert.Equal(t, builder.DefaultKMax, cfg.Graph.KMax)
	assert.Equal(t, "data/corpus.yaml", cfg.Data.Corpus)
	assert.Equal(t, "dev", cfg.Log.Mode)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versegraph.yaml")
	doc := "graph:\n  kmin: 3\n  kmax: 6\nembedding:\n  model: custom\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("VERSEGRAPH_GRAPH_KMAX", "9")
	t.Setenv("VERSEGRAPH_EMBEDDING_API_KEY", "sk-test")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Graph.KMin)
	assert.Equal(t, 9, cfg.Graph.KMax, "environment beats file")
	assert.Equal(t, "custom", cfg.Embedding.Model)
	assert.Equal(t, "sk-test", cfg.Embedding.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *config.Config {
		cfg, err := config.Load(viper.New(), "")
		require.NoError(t, err)
		return cfg
	}

	cases := map[string]func(*config.Config){
		"kmin above kmax":  func(c *config.Config) { c.Graph.KMin, c.Graph.KMax = 5, 4 },
		"negative kmin":    func(c *config.Config) { c.Graph.KMin = -1 },
		"negative nearest": func(c *config.Config) { c.Graph.Nearest = -1 },
		"zero emb workers": func(c *config.Config) { c.Embedding.Workers = 0 },
		"no corpus":        func(c *config.Config) { c.Data.Corpus = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestValidateEmbedding(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.ErrorIs(t, cfg.ValidateEmbedding(), config.ErrInvalidConfig)

	cfg.Embedding.APIKey = "k"
	require.ErrorIs(t, cfg.ValidateEmbedding(), config.ErrInvalidConfig, "huggingface needs a base URL")

	cfg.Embedding.BaseURL = "http://localhost:8080/v1"
	require.NoError(t, cfg.ValidateEmbedding())
}
