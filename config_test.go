package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-mosp/mosp"
	"github.com/ttpr0/go-mosp/weighting"
)

func assertTestConfig(t *testing.T, config Config) {
	t.Helper()
	assert.Equal(t, ":8080", config.Server.Addr)
	assert.Equal(t, 5.0, config.Server.RateLimit)
	assert.Equal(t, 10, config.Server.Burst)
	assert.Equal(t, 30*time.Second, config.Server.Timeout)
	assert.Equal(t, "memory", config.Cache.Type)
	assert.Equal(t, 10*time.Minute, config.Cache.TTL)
	assert.Equal(t, 500, config.Cache.MaxEntries)
	assert.Equal(t, "./graphs", config.GraphDir)
	require.Equal(t, 2, config.Profiles.Length())

	running := config.Profiles.Get("running")
	assert.Equal(t, "./data/city.pbf", running.Source)
	assert.Equal(t, "./data/elevation.csv", running.Elevation)
	assert.Equal(t, "running", running.Decoder)
	assert.True(t, running.Normalize)
	assert.False(t, running.IsGraphSource())
	assert.Equal(t, []weighting.ObjectiveType{weighting.GRADE, weighting.TURNS, weighting.ROAD_TYPE}, running.Weighting.Objectives)
	assert.Equal(t, weighting.STEEP, running.Weighting.Elevation)
	assert.Equal(t, weighting.EXPONENTIAL, running.Weighting.TurnPenalty)
	assert.Equal(t, weighting.LINEAR, running.Weighting.ElevationPenalty)
	assert.Equal(t, 50, running.Weighting.SpeedRestriction)
	assert.Equal(t, 5, running.Alternatives.MaxCount)
	assert.Equal(t, 0.75, running.Alternatives.MaxSimilarity)

	test := config.Profiles.Get("test")
	assert.True(t, test.IsGraphSource())
	assert.False(t, test.Normalize)
	assert.Equal(t, mosp.PruneLatest, test.Pruning)
	assert.Equal(t, 10, test.Alternatives.MaxCount)
}

func TestReadConfigYAML(t *testing.T) {
	config, err := ReadConfig("testdata/config.yml")
	require.NoError(t, err)
	assertTestConfig(t, config)
}

func TestReadConfigTOML(t *testing.T) {
	config, err := ReadConfig("testdata/config.toml")
	require.NoError(t, err)
	assertTestConfig(t, config)
}

func TestReadConfigDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("profiles:\n  walk:\n    source: walk.pbf\n"), 0o644))
	config, err := ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, ":5002", config.Server.Addr)
	assert.Equal(t, 60*time.Second, config.Server.Timeout)
	assert.Equal(t, 15*time.Minute, config.Cache.TTL)
	assert.Equal(t, 10000, config.Cache.MaxEntries)
	assert.Equal(t, "./graphs", config.GraphDir)
	walk := config.Profiles.Get("walk")
	assert.Equal(t, weighting.DefaultOptions(), walk.Weighting)
	assert.Equal(t, mosp.PruneFrontier, walk.Pruning)
}

func TestReadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"config.json", `{}`},
		{"no-profiles.yml", "graph-dir: ./graphs\n"},
		{"no-source.yml", "profiles:\n  walk:\n    decoder: running\n"},
		{"bad-decoder.yml", "profiles:\n  walk:\n    source: walk.pbf\n    decoder: flying\n"},
		{"bad-objective.yml", "profiles:\n  walk:\n    source: walk.pbf\n    weighting:\n      objectives: [beauty]\n"},
		{"bad-pruning.toml", "[profiles.walk]\nsource = \"walk.pbf\"\npruning = \"some\"\n"},
		{"bad-cache.toml", "[cache]\ntype = \"redis\"\n[profiles.walk]\nsource = \"walk.pbf\"\n"},
		{"broken.yml", "profiles: [\n"},
	}
	for _, tt := range tests {
		file := filepath.Join(dir, tt.name)
		require.NoError(t, os.WriteFile(file, []byte(tt.data), 0o644))
		_, err := ReadConfig(file)
		assert.Error(t, err, tt.name)
	}

	_, err := ReadConfig(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
