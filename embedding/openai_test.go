// SPDX-License-Identifier: MIT
package embedding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/versegraph/embedding"
)

type embeddingsRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// newEmbeddingsServer answers /embeddings with vectors [len(text), i, 1]
// returned in reverse index order.
func newEmbeddingsServer(t *testing.T, seen *embeddingsRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))

		data := make([]map[string]any, 0, len(seen.Input))
		for i := len(seen.Input) - 1; i >= 0; i-- {
			data = append(data, map[string]any{
				"object":    "embedding",
				"index":     i,
				"embedding": []float32{float32(len(seen.Input[i])), float32(i), 1},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"model":  seen.Model,
			"data":   data,
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestOpenAIEmbedder_EmbedBatch(t *testing.T) {
	var seen embeddingsRequest
	srv := newEmbeddingsServer(t, &seen)

	emb, err := embedding.NewOpenAIEmbedder(embedding.Config{APIKey: "secret", BaseURL: srv.URL})
	require.NoError(t, err)

	got, err := emb.EmbedBatch(context.Background(), []string{"hi", "there"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 0, 1}, {5, 1, 1}}, got, "vectors come back in input order")
	assert.Equal(t, embedding.DefaultModel, seen.Model)
	assert.Equal(t, []string{"hi", "there"}, seen.Input)
}

func TestOpenAIEmbedder_Errors(t *testing.T) {
	_, err := embedding.NewOpenAIEmbedder(embedding.Config{Provider: "carrier-pigeon"})
	require.ErrorIs(t, err, embedding.ErrUnsupportedProvider)

	emb, err := embedding.NewOpenAIEmbedder(embedding.Config{Provider: embedding.ProviderHuggingFace})
	require.NoError(t, err)
	_, err = emb.EmbedBatch(context.Background(), nil)
	require.ErrorIs(t, err, embedding.ErrNoLines)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"model loading","type":"server_error"}}`))
	}))
	defer srv.Close()

	emb, err = embedding.NewOpenAIEmbedder(embedding.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = emb.EmbedBatch(context.Background(), []string{"a"})
	require.Error(t, err)
}
