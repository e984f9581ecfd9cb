// Package export renders a finished brief as a fixed-layout markdown
// document: the print/PDF pipeline input and the terminal preview source.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
)

// Document renders the formatted summary entries into a markdown brief
// document grouped by catalog section. Interactive affordances do not exist
// here; the output is plain document text safe for a light print palette.
func Document(studio, client string, submittedAt time.Time, entries []brief.Entry) string {
	var b strings.Builder

	b.WriteString("# " + studio + "\n\n")
	b.WriteString("## Project Brief")
	if strings.TrimSpace(client) != "" {
		b.WriteString(" — " + client)
	}
	b.WriteString("\n\n")
	if !submittedAt.IsZero() {
		b.WriteString(fmt.Sprintf("_Submitted %s_\n\n", submittedAt.Format("January 2, 2006 15:04 MST")))
	}

	section := ""
	for _, e := range entries {
		if e.Section != section {
			section = e.Section
			b.WriteString("### " + section + "\n\n")
		}
		b.WriteString("**" + e.Title + "**\n\n")
		b.WriteString(e.Display + "\n\n")
	}

	return b.String()
}

// Write renders the document and writes it into dir, returning the file
// path. The directory is created when missing.
func Write(dir, studio, client string, submittedAt time.Time, entries []brief.Entry) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("export directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	stamp := submittedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	name := fmt.Sprintf("brief-%s.md", stamp.UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	doc := Document(studio, client, submittedAt, entries)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// RenderTerminal renders markdown for in-terminal display. On renderer
// failure the raw markdown is returned unchanged.
func RenderTerminal(md string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
