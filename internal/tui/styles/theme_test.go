package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeCarriesLabel(t *testing.T) {
	assert.Contains(t, Badge("SENT", StatusOK), "SENT")
	assert.Contains(t, Badge("SENT", StatusOK), "●")
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, StatusBadge("ok"), "OK")
	assert.Contains(t, StatusBadge("warn"), "WARN")
	assert.Contains(t, StatusBadge("error"), "ERROR")
	// Unknown statuses fall back to an uppercased info badge.
	assert.Contains(t, StatusBadge("pending"), "PENDING")
}

func TestCardWrapsContent(t *testing.T) {
	out := Card.Render("ID  CLIENT")
	assert.Contains(t, out, "ID  CLIENT")
}

func TestColorHelpersKeepText(t *testing.T) {
	for _, fn := range []func(string) string{Purple, Teal, Gold, Green, Red, Dim, Bold} {
		assert.Contains(t, fn("logistics"), "logistics")
	}
}

func TestSwatch(t *testing.T) {
	assert.Contains(t, Swatch("#cea0ff"), "██")
	assert.Equal(t, "  ", Swatch(""))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	out := TruncateWithEllipsis("a very long client name", 10)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Len(t, []rune(out), 10)
}
