package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/TALS/config"
	"github.com/teranos/TALS/nta"
)

func TestModelReloadCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "train-gate.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<nta><declaration>int x;</declaration></nta>`), 0o644))

	repo := nta.NewRepository()
	defer repo.Close()

	cb := makeModelReloadCallback(repo, "")

	// Config now names a model document: load it
	require.NoError(t, cb(&config.Config{Model: config.ModelConfig{Path: path}}))
	require.NotNil(t, repo.Document())

	// Unchanged path is a no-op
	require.NoError(t, cb(&config.Config{Model: config.ModelConfig{Path: path}}))

	// A broken replacement path is reported and the active document kept
	err := cb(&config.Config{Model: config.ModelConfig{Path: filepath.Join(dir, "gone.xml")}})
	require.Error(t, err)
	assert.NotNil(t, repo.Document())
}

func TestModelReloadCallbackEmptyPath(t *testing.T) {
	repo := nta.NewRepository()
	defer repo.Close()

	cb := makeModelReloadCallback(repo, "")
	require.NoError(t, cb(&config.Config{}))
	assert.Nil(t, repo.Document())
}
