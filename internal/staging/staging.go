package staging

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"video-processor/internal/port"
)

// Dirs holds the two local scratch directories for in-flight files.
type Dirs struct {
	rawDir       string
	processedDir string
}

// compile-time check: *Dirs must satisfy port.Staging
var _ port.Staging = (*Dirs)(nil)

func NewDirs(rawDir, processedDir string) *Dirs {
	return &Dirs{rawDir: rawDir, processedDir: processedDir}
}

// EnsureDirs creates both staging directories (including parents) if they
// do not exist yet. Safe to call repeatedly.
func (d *Dirs) EnsureDirs() error {
	for _, dir := range []string{d.rawDir, d.processedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// RawPath returns the local path for a raw video. The full object name
// is flattened into a single filename, so two objects that differ only
// in their directory prefix still get distinct staging files.
func (d *Dirs) RawPath(name string) string {
	return filepath.Join(d.rawDir, localName(name))
}

func (d *Dirs) ProcessedPath(name string) string {
	return filepath.Join(d.processedDir, localName(name))
}

func (d *Dirs) RemoveRaw(ctx context.Context, name string) error {
	log.Printf("deleting raw video %q...", name)
	return removeFile(d.RawPath(name))
}

func (d *Dirs) RemoveProcessed(ctx context.Context, name string) error {
	log.Printf("deleting processed video %q...", name)
	return removeFile(d.ProcessedPath(name))
}

// localName flattens an object name into one filename that cannot
// escape the staging dir. Cleaning against a rooted path strips any
// ".." segments before the separators are replaced.
func localName(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(name)), "/")
	return strings.ReplaceAll(name, "/", "_")
}

// removeFile deletes a local file. A missing file is not an error.
func removeFile(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("file %q does not exist", path)
			return nil
		}
		return err
	}
	return nil
}
