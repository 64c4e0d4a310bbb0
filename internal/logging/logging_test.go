package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info").With("service", "workshop")

	ctx := IntoContext(context.Background(), l)
	FromContext(ctx).Info("order_created", "order_id", 5)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order_created", line["msg"])
	assert.Equal(t, "workshop", line["service"])
	assert.EqualValues(t, 5, line["order_id"])
}

func TestFromContext_DefaultsWhenMissing(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
