package collector

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlievieth/fastwalk"
)

// Entry is a single filesystem entry observed during listing.
type Entry struct {
	// Path is the entry's path as reported by the walk.
	Path string
	// IsDir marks directories; only regular files contribute sizes.
	IsDir bool
	// Size is the size in bytes. Zero for directories.
	Size uint64
}

// FS abstracts the filesystem primitives the collector consumes.
type FS interface {
	// Exists reports whether path refers to an existing file or directory.
	Exists(path string) bool
	// List walks path recursively, invoking onEntry for every entry found.
	// Hidden entries are skipped unless includeHidden; the root itself is
	// always listed even when its name is hidden, since the caller asked
	// for it explicitly. onEntry may be called from multiple goroutines.
	// Per-entry access errors are skipped, not fatal.
	List(ctx context.Context, path string, includeHidden bool, onEntry func(Entry)) error
}

// OSFS implements FS against the local filesystem using fastwalk.
type OSFS struct{}

// Exists reports whether path exists.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// List walks root with fastwalk. Symlinks are not followed.
func (OSFS) List(ctx context.Context, root string, includeHidden bool, onEntry func(Entry)) error {
	conf := &fastwalk.Config{
		Follow: false,
	}

	//nolint:varnamelen // d is standard for DirEntry
	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Unreadable entries are skipped, not fatal
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if !includeHidden && path != root && hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			onEntry(Entry{Path: path, IsDir: true})

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		onEntry(Entry{Path: path, Size: uint64(info.Size())}) //nolint:gosec // Regular file sizes are non-negative

		return nil
	})
}

// hidden reports whether a base name is a dot-prefixed entry.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
