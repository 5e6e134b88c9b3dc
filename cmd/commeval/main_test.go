package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	err := newApp(out).Run(append([]string{"commeval"}, args...))
	return out, err
}

// TestMainScenario generates a fixture, evaluates the golden partition
// against itself and archives the files.
func TestMainScenario(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "cliques")

	out, err := run(t, "generate", "--out", prefix,
		"--groups", "2", "--size", "5", "--p-in", "1", "--p-out", "0", "--seed", "3")
	require.NoError(t, err)

	var gen generateOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &gen))
	assert.Equal(t, 10, gen.Vertices)
	assert.Equal(t, 20, gen.Edges)
	assert.Equal(t, 2, gen.Communities)
	assert.NotEmpty(t, gen.RunID)
	assert.FileExists(t, prefix+".net")
	assert.FileExists(t, prefix+".clu")

	out, err = run(t, "evaluate",
		"--golden", prefix+".clu", "--partition", prefix+".clu", "--network", prefix+".net",
		"--parameter", "0.25")
	require.NoError(t, err)

	var rep evaluateOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 0.25, rep.Parameter)
	assert.Equal(t, 2, rep.CommunityCount)
	assert.InDelta(t, 0.5, rep.Modularity, 1e-12)
	assert.InDelta(t, 1.0, rep.NormalizedMutualInformation, 1e-12)
	assert.Equal(t, 1.0, rep.JaccardIndex)
	assert.NotEqual(t, gen.RunID, rep.RunID)

	out, err = run(t, "archive", "--dir", dir, "--format", "yaml")
	require.NoError(t, err)

	var arc archiveOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &arc))
	assert.True(t, arc.Created)
	assert.Equal(t, []string{"cliques.clu", "cliques.net"}, arc.Moved)
	assert.FileExists(t, filepath.Join(dir, "SBM", "cliques.clu"))
}

// TestConfigFlag checks that the YAML file drives defaults.
func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "commeval.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"output:\n  format: yaml\ngenerator:\n  groups: 3\n  size: 2\n  pIn: 1\n  pOut: 0\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "generate", "--out", filepath.Join(dir, "tiny"))
	require.NoError(t, err)

	var gen generateOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &gen))
	assert.Equal(t, 6, gen.Vertices)
	assert.Equal(t, 3, gen.Edges)
	assert.Equal(t, 3, gen.Communities)
}

func TestEvaluate_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "evaluate",
		"--golden", filepath.Join(dir, "none.clu"),
		"--partition", filepath.Join(dir, "none.clu"),
		"--network", filepath.Join(dir, "none.net"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read golden")
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "archive")
	assert.ErrorContains(t, err, "missing.yaml")
}
