package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// FileExporter appends snapshots to a YAML stream, one document each.
type FileExporter struct {
	mu   sync.Mutex
	f    *os.File
	path string
	log  zerolog.Logger
}

// NewFileExporter opens (or creates) path for appending.
func NewFileExporter(path string, log zerolog.Logger) (*FileExporter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open report %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("report exporter opened")
	return &FileExporter{f: f, path: path, log: log}, nil
}

// Export writes each snapshot as its own document.
func (e *FileExporter) Export(snaps ...*Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.f == nil {
		return errors.New("report exporter closed")
	}
	for _, s := range snaps {
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode snapshot %s: %w", s.Item, err)
		}
		if _, err := e.f.Write(append([]byte("---\n"), data...)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	e.log.Debug().Int("snapshots", len(snaps)).Str("path", e.path).Msg("snapshots exported")
	return nil
}

// Close closes the file. Further exports fail.
func (e *FileExporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.f == nil {
		return nil
	}
	err := e.f.Close()
	e.f = nil
	return err
}

// ReadSnapshots decodes every document in a report stream.
func ReadSnapshots(r io.Reader) ([]*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	var out []*Snapshot
	for {
		var s Snapshot
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		out = append(out, &s)
	}
}
