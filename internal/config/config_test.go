package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrDefaultMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "Moonworks Creative", cfg.Studio)
	assert.NotEmpty(t, cfg.OutboxDir)
	assert.NotEmpty(t, cfg.ArchivePath)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Studio = "Night Harbor Studio"
	cfg.OutboxDir = filepath.Join(dir, "out")

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Night Harbor Studio", loaded.Studio)
	assert.Equal(t, filepath.Join(dir, "out"), loaded.OutboxDir)
	assert.Equal(t, dir, Root())
	assert.Equal(t, loaded, Get())
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"studio":"Acme"}`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Studio)
	assert.NotEmpty(t, cfg.ExportDir)
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
	_, err = LoadOrDefault(dir)
	assert.Error(t, err)
}
