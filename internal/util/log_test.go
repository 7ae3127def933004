package util_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/util"
)

func TestLogFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).With().Str("id", "req-1").Logger()
	ctx := l.WithContext(context.Background())

	util.LogFromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"id":"req-1"`)

	// falls back to the global logger
	assert.NotEqual(t, zerolog.Disabled, util.LogFromContext(context.Background()).GetLevel())

	disabled := util.DisableLogger(context.Background(), true)
	assert.Equal(t, zerolog.Disabled, util.LogFromContext(disabled).GetLevel())
}

func TestLogLevelFromString(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, util.LogLevelFromString("info"))
	assert.Equal(t, zerolog.DebugLevel, util.LogLevelFromString("not-a-level"))
}

func TestRequestIDFromContext(t *testing.T) {
	_, err := util.RequestIDFromContext(context.Background())
	require.Error(t, err)

	ctx := context.WithValue(context.Background(), util.CTXKeyRequestID, "req-1")
	id, err := util.RequestIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-1", id)
}
