package submit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/store"
)

func testBrief() store.Brief {
	a := make(brief.Answers)
	a.Set("client-name", brief.TextValue("Acme Studio"))
	a.Set("contact-info", brief.TextValue("hello@acme.test"))
	a.Set("primary-function", brief.ChoiceValue{}.Select("Photo Moment"))
	return store.Brief{
		Client:      "Acme Studio",
		Contact:     "hello@acme.test",
		SubmittedAt: time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC),
		Answers:     a,
	}
}

func TestSubmitWritesOutboxAndArchives(t *testing.T) {
	dir := t.TempDir()
	archive, err := store.Open(filepath.Join(dir, "archive.db"))
	require.NoError(t, err)
	defer archive.Close()

	var got Receipt
	notified := 0
	sub := New(filepath.Join(dir, "outbox"), archive, func(r Receipt) {
		notified++
		got = r
	})

	receipt, err := sub.Submit(context.Background(), brief.DefaultCatalog(), testBrief())
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
	assert.Equal(t, receipt, got)
	assert.Positive(t, receipt.BriefID)
	assert.Equal(t, "brief-acme-studio-20260830-150405.json", filepath.Base(receipt.Path))

	// The outbox document carries answers and the rendered summary.
	data, err := os.ReadFile(receipt.Path)
	require.NoError(t, err)
	var doc struct {
		Client  string        `json:"client"`
		Answers brief.Answers `json:"answers"`
		Summary []brief.Entry `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Acme Studio", doc.Client)
	assert.True(t, doc.Answers.Answered("primary-function"))
	assert.NotEmpty(t, doc.Summary)

	// The archive row round-trips.
	archived, err := archive.GetBrief(context.Background(), receipt.BriefID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Studio", archived.Client)
}

func TestSubmitWithoutArchive(t *testing.T) {
	sub := New(t.TempDir(), nil, nil)
	receipt, err := sub.Submit(context.Background(), brief.DefaultCatalog(), testBrief())
	require.NoError(t, err)
	assert.Zero(t, receipt.BriefID)
	assert.FileExists(t, receipt.Path)
}

func TestSubmitRequiresOutbox(t *testing.T) {
	sub := New("", nil, nil)
	_, err := sub.Submit(context.Background(), brief.DefaultCatalog(), testBrief())
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "acme-studio", slug("  Acme Studio "))
	assert.Equal(t, "brief", slug("!!!"))
	assert.Equal(t, "mothers-day-popup", slug("Mother's Day Popup"))
}
