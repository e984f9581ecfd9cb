// Package store persists submitted briefs in a local SQLite archive.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/marco-mi/MoonworksBrief/internal/brief"
)

// Brief is one archived submission.
type Brief struct {
	ID          int64
	Client      string
	Contact     string
	SubmittedAt time.Time
	Answers     brief.Answers
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS briefs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	client       TEXT NOT NULL,
	contact      TEXT NOT NULL DEFAULT '',
	submitted_at INTEGER NOT NULL,
	answers      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_briefs_submitted_at ON briefs(submitted_at);
`

// Open creates or opens the archive at path and bootstraps the schema. The
// parent directory is created when missing.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// SaveBrief inserts one submission and returns its archive id.
func (s *Store) SaveBrief(ctx context.Context, b Brief) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("archive is not configured")
	}
	client := strings.TrimSpace(b.Client)
	if client == "" {
		return 0, fmt.Errorf("client name is required")
	}
	submittedAt := b.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}
	answers, err := json.Marshal(b.Answers)
	if err != nil {
		return 0, fmt.Errorf("encode answers: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO briefs (client, contact, submitted_at, answers) VALUES (?, ?, ?, ?)`,
		client, strings.TrimSpace(b.Contact), toMillis(submittedAt), string(answers))
	if err != nil {
		return 0, fmt.Errorf("insert brief: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read insert id: %w", err)
	}
	return id, nil
}

// GetBrief loads one archived submission by id.
func (s *Store) GetBrief(ctx context.Context, id int64) (Brief, error) {
	if err := ctx.Err(); err != nil {
		return Brief{}, err
	}
	if s == nil || s.db == nil {
		return Brief{}, fmt.Errorf("archive is not configured")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, client, contact, submitted_at, answers FROM briefs WHERE id = ?`, id)

	var b Brief
	var millis int64
	var answers string
	if err := row.Scan(&b.ID, &b.Client, &b.Contact, &millis, &answers); err != nil {
		if err == sql.ErrNoRows {
			return Brief{}, fmt.Errorf("brief %d not found", id)
		}
		return Brief{}, fmt.Errorf("load brief %d: %w", id, err)
	}
	b.SubmittedAt = fromMillis(millis)
	if err := json.Unmarshal([]byte(answers), &b.Answers); err != nil {
		return Brief{}, fmt.Errorf("decode answers for brief %d: %w", id, err)
	}
	return b, nil
}

// ListBriefs returns all archived submissions, newest first. Answer payloads
// are included so callers can re-render summaries.
func (s *Store) ListBriefs(ctx context.Context) ([]Brief, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("archive is not configured")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client, contact, submitted_at, answers FROM briefs ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list briefs: %w", err)
	}
	defer rows.Close()

	var out []Brief
	for rows.Next() {
		var b Brief
		var millis int64
		var answers string
		if err := rows.Scan(&b.ID, &b.Client, &b.Contact, &millis, &answers); err != nil {
			return nil, fmt.Errorf("scan brief row: %w", err)
		}
		b.SubmittedAt = fromMillis(millis)
		if err := json.Unmarshal([]byte(answers), &b.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for brief %d: %w", b.ID, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate briefs: %w", err)
	}
	return out, nil
}
