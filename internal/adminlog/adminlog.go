// Package adminlog appends administrative audit events to a flat
// newline-delimited JSON file. Writes are fire-and-forget: callers never
// wait on them and a failed append never affects a request outcome.
package adminlog

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sink records audit events. Implementations must not block the caller.
type Sink interface {
	Record(event string, payload map[string]any)
}

type entry struct {
	TS      string         `json:"ts"`
	Event   string         `json:"event"`
	Admin   string         `json:"admin"`
	Payload map[string]any `json:"payload"`
}

// FileSink appends NDJSON entries to a local file.
type FileSink struct {
	mu    sync.Mutex
	path  string
	admin string
}

// NewFileSink creates a file-backed sink. The parent directory is created
// if missing; the file itself is created on first append.
func NewFileSink(path, adminEmail string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileSink{path: path, admin: adminEmail}, nil
}

// Record appends an event asynchronously. Failures are logged and dropped.
func (s *FileSink) Record(event string, payload map[string]any) {
	e := entry{
		TS:      time.Now().UTC().Format(time.RFC3339),
		Event:   event,
		Admin:   s.admin,
		Payload: payload,
	}

	go func() {
		if err := s.append(e); err != nil {
			slog.Error("failed to write admin log", "event", event, "error", err)
		}
	}()
}

func (s *FileSink) append(e entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(event string, payload map[string]any) {}

// Truncate shortens s to at most n bytes, for payload previews.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
