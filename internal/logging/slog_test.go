package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefault_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf, slog.LevelDebug)

	ctx := context.Background()
	log.Debug(ctx, "debug msg", "k", "v1")
	log.Info(ctx, "info msg", "k", "v2")
	log.Warn(ctx, "warn msg", "k", "v3")
	log.Error(ctx, "error msg", "k", "v4")

	out := buf.String()
	for _, want := range []string{"debug msg", "info msg", "warn msg", "error msg", "k=v1", "k=v4"} {
		assert.Contains(t, out, want)
	}
}

func TestNewDefault_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf, slog.LevelInfo)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestWith_AddsPersistentAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(&buf, slog.LevelInfo).With("component", "uploader")

	log.Info(context.Background(), "one")
	log.Info(context.Background(), "two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "component=uploader")
	}
}
