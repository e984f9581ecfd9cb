package outbox

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEvent(t *testing.T) {
	cases := []struct {
		op   fsnotify.Op
		want EventType
	}{
		{fsnotify.Create, EventDelivered},
		{fsnotify.Write, EventDelivered},
		{fsnotify.Chmod, EventDelivered},
		{fsnotify.Remove, EventRemoved},
		{fsnotify.Rename, EventRemoved},
	}
	for _, tc := range cases {
		got := classifyEvent(fsnotify.Event{Name: "brief-acme.json", Op: tc.op})
		assert.Equal(t, tc.want, got, "op %v", tc.op)
	}
}

func TestReadHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brief-acme.json")
	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	doc := `{"client":"Acme Studio","contact":"jo@acme.test","submittedAt":"2026-03-14T09:30:00Z","answers":{}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	h, err := readHeader(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Studio", h.Client)
	assert.Equal(t, "jo@acme.test", h.Contact)
	assert.True(t, submitted.Equal(h.SubmittedAt))
}

func TestReadHeaderErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := readHeader(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = readHeader(bad)
	assert.Error(t, err)
}

func TestPendingListsOnlyBriefFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "brief-a.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brief-b.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	pending, err := w.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, ".json", filepath.Ext(p))
	}
}

func TestNewWatcherCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outbox")
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
