package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("WARNING"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel(" ERROR "))
	assert.Equal(t, logger.INFO, logger.ParseLevel("bogus"))
	assert.True(t, logger.ValidLevel("info"))
	assert.False(t, logger.ValidLevel(""))
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Info("hidden")
	log.Warn("shown %d", 42)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "shown 42")
}

func TestLogger_FieldsAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.WithOutput(&buf), logger.WithColors(false))

	log := base.WithPrefix("quiz").WithFields(map[string]any{"b": 2, "a": 1}).WithField("a", 3)
	log.Info("answered")

	out := buf.String()
	assert.Contains(t, out, "[quiz]")
	assert.Contains(t, out, "answered a=3 b=2")

	buf.Reset()
	base.Info("plain")
	assert.NotContains(t, buf.String(), "a=3", "derived fields must not leak into the parent")
}

func TestContext_RoundTrip(t *testing.T) {
	log := logger.New(logger.WithPrefix("req"))
	ctx := logger.NewContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
