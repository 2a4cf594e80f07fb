package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	logger.With("profile", "walk").Info("loaded graph", "nodes", 3)
	logger.Warn("slow")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "INFO loaded graph profile=walk nodes=3"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "WARN slow"), lines[1])
}
