package export

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
)

func sampleEntries() []brief.Entry {
	catalog := []brief.Question{
		{ID: "client-name", Section: "Project Basics", Title: "Name of client, brand, or institution", Kind: brief.KindText},
		{ID: "primary-function", Section: "Functional", Title: "Primary Function", Kind: brief.KindSingleSelect},
		{ID: "delivery-date", Section: "Functional", Title: "Desired Delivery/Installing Date", Kind: brief.KindDate},
	}
	answers := make(brief.Answers)
	answers.Set("client-name", brief.TextValue("Acme"))
	answers.Set("primary-function", brief.ChoiceValue{}.Select("Photo Moment"))
	return brief.Format(catalog, answers)
}

func TestDocumentLayout(t *testing.T) {
	submitted := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	doc := Document("Moonworks Creative", "Acme", submitted, sampleEntries())

	assert.True(t, strings.HasPrefix(doc, "# Moonworks Creative\n"))
	assert.Contains(t, doc, "## Project Brief — Acme")
	assert.Contains(t, doc, "_Submitted August 30, 2026 15:00 UTC_")

	// Section headings appear once each, in catalog order.
	assert.Equal(t, 1, strings.Count(doc, "### Project Basics"))
	assert.Equal(t, 1, strings.Count(doc, "### Functional"))
	assert.Less(t, strings.Index(doc, "### Project Basics"), strings.Index(doc, "### Functional"))

	assert.Contains(t, doc, "**Primary Function**\n\nPhoto Moment")
	assert.Contains(t, doc, "**Desired Delivery/Installing Date**\n\nNot answered")
}

func TestDocumentWithoutClientOrDate(t *testing.T) {
	doc := Document("Moonworks Creative", "  ", time.Time{}, nil)
	assert.Contains(t, doc, "## Project Brief\n")
	assert.NotContains(t, doc, "_Submitted")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	submitted := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	path, err := Write(dir, "Moonworks Creative", "Acme", submitted, sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, "brief-20260830-150405.md", strings.TrimPrefix(path, dir+string(os.PathSeparator)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Project Brief — Acme")

	_, err = Write("  ", "Moonworks Creative", "Acme", submitted, nil)
	assert.Error(t, err)
}

func TestRenderTerminalFallsBackSafely(t *testing.T) {
	md := "# Heading\n\nbody"
	out := RenderTerminal(md, 60)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "Heading")
}
