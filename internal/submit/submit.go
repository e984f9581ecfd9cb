// Package submit delivers finished briefs: a JSON copy into the outbox
// directory for downstream pickup, a row in the SQLite archive, and an
// accepted signal for the UI.
package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
	"github.com/marco-mi/MoonworksBrief/internal/store"
)

// Receipt is the accepted signal emitted after a successful submission.
type Receipt struct {
	BriefID     int64     `json:"briefId"`
	Path        string    `json:"path"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submitter writes briefs to the outbox and the archive. The archive and the
// notify hook are both optional; a Submitter with only an outbox still works.
type Submitter struct {
	outbox  string
	archive *store.Store
	notify  func(Receipt)
}

// New creates a Submitter. notify, when non-nil, is invoked synchronously
// once a submission has landed.
func New(outbox string, archive *store.Store, notify func(Receipt)) *Submitter {
	return &Submitter{outbox: outbox, archive: archive, notify: notify}
}

// outboxDocument is the on-disk shape of a submitted brief. The formatted
// summary rides along so consumers do not need the catalog to display it.
type outboxDocument struct {
	Client      string        `json:"client"`
	Contact     string        `json:"contact,omitempty"`
	SubmittedAt time.Time     `json:"submittedAt"`
	Answers     brief.Answers `json:"answers"`
	Summary     []brief.Entry `json:"summary"`
}

// Submit delivers one brief. The contract is fire-and-forget from the
// wizard's point of view: any error is reported back for display, never
// raised into the state machine.
func (s *Submitter) Submit(ctx context.Context, catalog []brief.Question, b store.Brief) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if strings.TrimSpace(b.Client) == "" {
		b.Client = "Unnamed client"
	}
	if b.SubmittedAt.IsZero() {
		b.SubmittedAt = time.Now()
	}

	path, err := s.writeOutbox(catalog, b)
	if err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{Path: path, SubmittedAt: b.SubmittedAt}
	if s.archive != nil {
		id, err := s.archive.SaveBrief(ctx, b)
		if err != nil {
			return Receipt{}, fmt.Errorf("archive brief: %w", err)
		}
		receipt.BriefID = id
	}

	if s.notify != nil {
		s.notify(receipt)
	}
	return receipt, nil
}

func (s *Submitter) writeOutbox(catalog []brief.Question, b store.Brief) (string, error) {
	if strings.TrimSpace(s.outbox) == "" {
		return "", fmt.Errorf("outbox directory is required")
	}
	if err := os.MkdirAll(s.outbox, 0o755); err != nil {
		return "", fmt.Errorf("create outbox directory: %w", err)
	}

	doc := outboxDocument{
		Client:      b.Client,
		Contact:     b.Contact,
		SubmittedAt: b.SubmittedAt,
		Answers:     b.Answers,
		Summary:     brief.Format(catalog, b.Answers),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode brief: %w", err)
	}

	name := fmt.Sprintf("brief-%s-%s.json", slug(b.Client), b.SubmittedAt.UTC().Format("20060102-150405"))
	path := filepath.Join(s.outbox, name)

	// Write under a temp name first so outbox consumers never see a
	// half-written document.
	tmp := filepath.Join(s.outbox, ".tmp-"+name)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write outbox file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalize outbox file: %w", err)
	}
	return path, nil
}

// slug reduces a client name to a filesystem-safe token.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "brief"
	}
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}
