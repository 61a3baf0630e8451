package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "gesture")
	ctx = WithSession(ctx, 3)
	FromContext(ctx).Debug().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"gesture"`)
	assert.Contains(t, out, `"gesture_session":3`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}
