package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := runCommand(t, "solve", "--graph", "testdata/graph.json", "--source", "1", "--target", "4")
	require.NoError(t, err)
	assert.Equal(t, "node 4: [4,7] path [1 2 3 4]\n"+
		"node 4: [5,5] path [1 3 4]\n"+
		"node 4: [10,0] path [1 4]\n", out)

	out, err = runCommand(t, "solve", "--graph", "testdata/graph.json", "--source", "1")
	require.NoError(t, err)
	assert.Equal(t, "node 1: [0,0] path [1]\n"+
		"node 2: [1,5] path [1 2]\n"+
		"node 3: [3,6] path [1 2 3]\n"+
		"node 3: [4,4] path [1 3]\n"+
		"node 4: [4,7] path [1 2 3 4]\n"+
		"node 4: [5,5] path [1 3 4]\n"+
		"node 4: [10,0] path [1 4]\n", out)
}

func TestSolveCommandOptions(t *testing.T) {
	out, err := runCommand(t, "solve", "--graph", "testdata/graph.json", "--source", "1", "--target", "4", "--pruning", "latest")
	require.NoError(t, err)
	assert.Contains(t, out, "node 4: [10,0] path [1 4]\n")

	out, err = runCommand(t, "solve", "--graph", "testdata/graph.json", "--source", "1", "--max-iterations", "2")
	require.NoError(t, err)
	assert.Equal(t, "node 1: [0,0] path [1]\nnode 2: [1,5] path [1 2]\n", out)

	out, err = runCommand(t, "solve", "--graph", "testdata/graph.json", "--source", "1,3", "--target", "4")
	require.NoError(t, err)
	assert.Equal(t, "source 1\n"+
		"node 4: [4,7] path [1 2 3 4]\n"+
		"node 4: [5,5] path [1 3 4]\n"+
		"node 4: [10,0] path [1 4]\n"+
		"source 3\n"+
		"node 4: [1,1] path [3 4]\n", out)
}

func TestSolveCommandDOT(t *testing.T) {
	file := filepath.Join(t.TempDir(), "search.dot")
	_, err := runCommand(t, "solve", "--graph", "testdata/graph.json", "--source", "1", "--dot", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph G {")
	assert.Contains(t, string(data), `"3" [label="3\n[3,6]\n[4,4]"];`)
}

func TestSolveCommandErrors(t *testing.T) {
	tests := [][]string{
		{"solve", "--graph", "testdata/graph.json"},
		{"solve", "--source", "1"},
		{"solve", "--graph", "testdata/graph.json", "--source", "99"},
		{"solve", "--graph", "testdata/graph.json", "--source", "1", "--target", "99"},
		{"solve", "--graph", "testdata/graph.json", "--source", "1", "--pruning", "some"},
		{"solve", "--graph", "testdata/missing.json", "--source", "1"},
		{"solve", "--graph", "testdata/graph.json", "--profile", "test", "--source", "1"},
		{"solve", "--profile", "test", "--source", "1", "--config", "testdata/missing.yml"},
	}
	for _, args := range tests {
		_, err := runCommand(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	config := "graph-dir: " + filepath.Join(dir, "graphs") + "\n" +
		"profiles:\n" +
		"  test:\n" +
		"    source: testdata/graph.json\n" +
		"    normalize: false\n"
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte(config), 0o644))

	out, err := runCommand(t, "build", "--config", file)
	require.NoError(t, err)
	assert.Equal(t, "test: 4 nodes, 5 edges, 2 objectives\n", out)
	assert.FileExists(t, filepath.Join(dir, "graphs", "test-meta"))

	out, err = runCommand(t, "solve", "--config", file, "--profile", "test", "--source", "3")
	require.NoError(t, err)
	assert.Equal(t, "node 3: [0,0] path [3]\nnode 4: [1,1] path [3 4]\n", out)
}
