package positions

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/philipparndt/windpath/internal/seed"
	"github.com/philipparndt/windpath/pkg/geometry"
	"github.com/philipparndt/windpath/pkg/watcher"
)

// Reload is delivered when the position file was changed by someone else.
// Err is set when the new content could not be parsed; Positions is then nil.
type Reload struct {
	Positions []geometry.Vector3
	Err       error
}

// File is a Store persisted as a seed file
type File struct {
	path   string
	logger *slog.Logger

	mu          sync.Mutex
	positions   []geometry.Vector3
	lastWritten []byte
	watcher     *watcher.FileWatcher
	done        chan struct{}
}

// OpenFile loads the positions in path. A missing file yields an empty store
// that is created on the first write.
func OpenFile(path string, logger *slog.Logger) (*File, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	f := &File{path: path, logger: logger}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("position file does not exist yet", "path", path)
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read position file: %w", err)
	}

	positions, err := seed.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.positions = positions
	f.lastWritten = data

	logger.Info("loaded positions", "path", path, "count", len(positions))
	return f, nil
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

// Positions returns a copy of the current positions
func (f *File) Positions() []geometry.Vector3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.positions)
}

// SetPositions replaces the positions and rewrites the file
func (f *File) SetPositions(positions []geometry.Vector3) error {
	data, err := seed.Marshal(positions)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create position directory: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write position file: %w", err)
	}

	f.positions = slices.Clone(positions)
	f.lastWritten = data
	f.logger.Debug("saved positions", "path", f.path, "count", len(positions))
	return nil
}

// Watch reports external changes of the file on the returned channel.
// Content written by SetPositions is recognized and not reported.
func (f *File) Watch(debounce time.Duration) (<-chan Reload, error) {
	fw, err := watcher.NewFileWatcher(debounce, f.logger)
	if err != nil {
		return nil, err
	}

	reloads := make(chan Reload, 1)
	done := make(chan struct{})
	if err := fw.Watch([]string{f.path}, func(string) {
		r, changed := f.reload()
		if !changed {
			return
		}
		select {
		case reloads <- r:
		case <-done:
		}
	}); err != nil {
		fw.Close()
		return nil, err
	}

	f.mu.Lock()
	f.watcher = fw
	f.done = done
	f.mu.Unlock()

	fw.Start()
	return reloads, nil
}

// reload re-reads the file and reports whether it differs from what this
// File last read or wrote.
func (f *File) reload() (Reload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		// Replaced by rename; the Create event follows.
		return Reload{}, false
	}
	if err != nil {
		f.logger.Warn("failed to read changed position file", "path", f.path, "error", err)
		return Reload{Err: fmt.Errorf("failed to read position file: %w", err)}, true
	}

	if bytes.Equal(data, f.lastWritten) {
		return Reload{}, false
	}

	positions, err := seed.ParseBytes(data)
	if err != nil {
		f.logger.Warn("ignoring malformed position file", "path", f.path, "error", err)
		return Reload{Err: fmt.Errorf("%s: %w", f.path, err)}, true
	}

	f.positions = positions
	f.lastWritten = data
	f.logger.Info("position file changed", "path", f.path, "count", len(positions))
	return Reload{Positions: slices.Clone(positions)}, true
}

// Close stops watching
func (f *File) Close() error {
	f.mu.Lock()
	fw := f.watcher
	f.watcher = nil
	if f.done != nil {
		close(f.done)
		f.done = nil
	}
	f.mu.Unlock()

	if fw == nil {
		return nil
	}
	return fw.Close()
}
