// Package outbox watches the submission outbox directory for newly delivered
// briefs.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType classifies an outbox change.
type EventType string

const (
	EventDelivered EventType = "delivered"
	EventRemoved   EventType = "removed"
)

// BriefHeader is the lightweight view of an outbox document, enough to
// announce an arrival without re-parsing the full answer map.
type BriefHeader struct {
	Client      string    `json:"client"`
	Contact     string    `json:"contact"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Event is one observed outbox change. Header is populated for delivered
// briefs when the file could be read.
type Event struct {
	Type   EventType
	Path   string
	Time   time.Time
	Header *BriefHeader
}

// Watcher monitors the outbox directory.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher sets up an fsnotify watch on the outbox directory, creating the
// directory when missing.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create outbox directory: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}
	return &Watcher{dir: dir, watcher: fsw, debounce: 100 * time.Millisecond}, nil
}

// Close stops watching and cleans up resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch starts watching and returns a channel of outbox events. Cancelling
// the context stops watching; the channel is closed when watching ends.
func (w *Watcher) Watch(ctx context.Context) <-chan Event {
	out := make(chan Event, 16)

	go func() {
		defer close(out)

		// Debounce timer to coalesce rapid filesystem events per path.
		var debounceTimer *time.Timer
		pending := make(map[string]fsnotify.Event)

		resetDebounce := func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
		}

		processPending := func() {
			for path, ev := range pending {
				event := Event{
					Type: classifyEvent(ev),
					Path: path,
					Time: time.Now(),
				}
				if event.Type == EventDelivered {
					if header, err := readHeader(path); err == nil {
						event.Header = header
					}
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
			clear(pending)
		}

		// Initialize a stopped timer.
		debounceTimer = time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				// Only care about brief JSON files.
				if !strings.HasSuffix(event.Name, ".json") {
					continue
				}
				if strings.Contains(filepath.Base(event.Name), ".tmp-") {
					continue
				}
				pending[event.Name] = event
				resetDebounce()

			case <-debounceTimer.C:
				if len(pending) > 0 {
					processPending()
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				// Keep watching through transient errors.
				_ = err
			}
		}
	}()

	return out
}

// Pending lists the brief files currently sitting in the outbox.
func (w *Watcher) Pending() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("read outbox directory: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, filepath.Join(w.dir, e.Name()))
	}
	return out, nil
}

func classifyEvent(ev fsnotify.Event) EventType {
	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		return EventRemoved
	default:
		return EventDelivered
	}
}

func readHeader(path string) (*BriefHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var h BriefHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
