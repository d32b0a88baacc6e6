// Package scratch manages the short-lived audio files a digest run writes to disk.
package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Dir is a directory used as scratch space for downloaded audio.
// Each download gets a unique base name so concurrent requests never collide.
type Dir struct {
	path string
}

// New returns a scratch Dir rooted at path, creating it if needed.
// An empty path selects a "ytdigest" directory under the OS temp dir.
func New(path string) (*Dir, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), "ytdigest")
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// NewName returns a fresh base name of the form audio_<8 hex chars>.
func (d *Dir) NewName() string {
	return "audio_" + uuid.NewString()[:8]
}

// Stat returns the size of the file at path.
func (d *Dir) Stat(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("audio file not found: %s", filepath.Base(path))
	}
	return info.Size(), nil
}

// Purge removes every file in the directory whose name starts with name.
// This covers the final audio file as well as any partial downloads yt-dlp left
// behind. Failures are logged, not returned.
func (d *Dir) Purge(name string) int {
	matches, err := filepath.Glob(filepath.Join(d.path, name+"*"))
	if err != nil {
		slog.Warn("scratch: glob failed", slog.String("name", name), slog.Any("error", err))
		return 0
	}

	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			slog.Warn("scratch: could not clean up", slog.String("path", m), slog.Any("error", err))
			continue
		}
		removed++
		slog.Debug("scratch: cleaned up", slog.String("path", m))
	}
	return removed
}

// Residue lists files in the directory carrying name. Empty after a successful Purge.
func (d *Dir) Residue(name string) []string {
	matches, _ := filepath.Glob(filepath.Join(d.path, name+"*"))
	return matches
}
