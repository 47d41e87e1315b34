package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	log := NewLogger("test")

	require.NotNil(t, log)
}

func TestNop_Discards(t *testing.T) {
	log := Nop()

	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())

	// must not panic or write anywhere
	log.Info().Str("k", "v").Msg("dropped")
}

func TestGetChildLogger_ReturnsDistinctLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	log := FromContext(context.Background())

	require.NotNil(t, log)
}

func TestFromContext_RoundTrip(t *testing.T) {
	attached := Nop()
	ctx := attached.WithContext(context.Background())

	got := FromContext(ctx)

	require.NotNil(t, got)
	assert.Equal(t, zerolog.Disabled, got.GetLevel())
}

func TestFromRequest_NeverNil(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	assert.NotNil(t, FromRequest(req))
}
