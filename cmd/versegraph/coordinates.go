// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/versegraph/dataset"
	"github.com/katalvlaran/versegraph/embedding"
)

func newCoordinatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coordinates",
		Short: "Embed poems that have no position yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.coordinates(cmd)
		},
	}

	f := cmd.Flags()
	f.String("base-url", "", "OpenAI-compatible embeddings endpoint")
	f.String("model", embedding.DefaultModel, "embedding model")
	f.String("provider", embedding.ProviderHuggingFace, "embedding provider: openai or huggingface")
	f.Int("workers", embedding.DefaultWorkers, "concurrent embedding requests")
	_ = a.v.BindPFlag("embedding.base_url", f.Lookup("base-url"))
	_ = a.v.BindPFlag("embedding.model", f.Lookup("model"))
	_ = a.v.BindPFlag("embedding.provider", f.Lookup("provider"))
	_ = a.v.BindPFlag("embedding.workers", f.Lookup("workers"))

	return cmd
}

func (a *app) coordinates(cmd *cobra.Command) error {
	if err := a.cfg.ValidateEmbedding(); err != nil {
		return err
	}
	e := a.cfg.Embedding
	emb, err := embedding.NewOpenAIEmbedder(embedding.Config{
		Provider:   e.Provider,
		APIKey:     e.APIKey,
		BaseURL:    e.BaseURL,
		Model:      e.Model,
		Dimensions: e.Dimensions,
	})
	if err != nil {
		return err
	}

	corpus, err := dataset.LoadCorpus(a.cfg.Data.Corpus)
	if err != nil {
		return err
	}
	existing, err := dataset.ReadPositions(a.cfg.Data.Positions)
	if err != nil {
		return err
	}

	a.log.Debug("embedding", "base_url", e.BaseURL, "model", e.Model, "api_key", e.APIKey)
	positions, sum, err := embedding.Generate(cmd.Context(), emb, corpus.Poems(), existing,
		embedding.WithWorkers(e.Workers),
		embedding.WithLogger(a.log.Zap()),
	)
	if err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	if sum.Generated > 0 {
		if err = dataset.WritePositions(a.cfg.Data.Positions, positions); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d generated, %d existing, %d skipped\n",
		sum.Generated, sum.Existing, sum.Skipped)

	return nil
}
