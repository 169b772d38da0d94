// SPDX-License-Identifier: MIT
package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"", "dev", "DEV", "prod", "production"} {
		l, err := New(mode, "debug")
		require.NoError(t, err, mode)
		require.NotNil(t, l.Zap())
	}

	_, err := New("verbose", "")
	require.Error(t, err)

	_, err = New("dev", "loud")
	require.Error(t, err)
}

func TestRedaction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("embedding_api_key", "sk-123")

	l.Info("calling", "Authorization", "Bearer x", "model", "m")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["embedding_api_key"])
	assert.Equal(t, redacted, fields["Authorization"])
	assert.Equal(t, "m", fields["model"])
}

func TestIsSecretKey(t *testing.T) {
	assert.True(t, isSecretKey(" API_KEY "))
	assert.True(t, isSecretKey("refresh_token"))
	assert.False(t, isSecretKey("poem"))
}
