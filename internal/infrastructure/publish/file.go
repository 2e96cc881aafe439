package publish

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dilluhn/npo-rss-feed/internal/ports"
)

// FilePublisher stores the rendered feed on disk and keeps the latest
// snapshot in memory for serving. Writes go through a temp file and rename so
// readers of the output path never observe a partial document.
type FilePublisher struct {
	path   string
	logger *slog.Logger

	mu     sync.RWMutex
	latest []byte
}

var _ ports.Publisher = (*FilePublisher)(nil)

// NewFilePublisher wires the output path; empty means in-memory only.
func NewFilePublisher(path string, logger *slog.Logger) *FilePublisher {
	return &FilePublisher{path: path, logger: logger}
}

// Publish replaces the current feed atomically. On error the previous file
// and snapshot remain in place.
func (p *FilePublisher) Publish(data []byte) error {
	if p.path != "" {
		if err := writeAtomic(p.path, data); err != nil {
			return fmt.Errorf("write feed file: %w", err)
		}
	}

	p.mu.Lock()
	p.latest = append([]byte(nil), data...)
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("feed published", "bytes", len(data), "file", p.path)
	}
	return nil
}

// Latest returns the most recently published document, if any.
func (p *FilePublisher) Latest() ([]byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest == nil {
		return nil, false
	}
	return append([]byte(nil), p.latest...), true
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename temp: %w", err)
	}

	return nil
}
