package collector

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures a collection run.
type Options struct {
	// IncludeHidden includes dot-prefixed files and directories.
	IncludeHidden bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// FS is the filesystem to collect from. Defaults to OSFS.
	FS FS
}

// Result carries the outcome of a collection run.
type Result struct {
	// Files is the sorted, deduplicated list of regular files.
	Files []FileEntry `json:"files"`
	// Stats aggregates the file sizes.
	Stats SizeStats `json:"stats"`
	// Warnings lists per-spec problems that did not abort the run.
	Warnings []string `json:"warnings,omitempty"`
	// Elapsed is the total collection time.
	Elapsed time.Duration `json:"elapsed"`
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx
// is done.
func startProgressReporter(ctx context.Context, acc *accumulator, hook func(int64, uint64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(acc.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Collect resolves each path spec to filesystem entries, merges them,
// and computes size statistics over the deduplicated regular files.
//
// Specs are processed in the order given; an empty spec list defaults to
// the current directory. A spec that matches nothing or fails to list is
// recorded as a warning, not an error, so one bad path cannot abort the
// whole aggregation. An empty final file set is likewise a warning with
// all-zero stats.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Collect(ctx context.Context, specs []string, opts Options, progressHook func(int64, uint64)) (*Result, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = OSFS{}
	}

	if len(specs) == 0 {
		specs = []string{"."}
	}

	start := time.Now()
	result := &Result{}
	acc := &accumulator{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, acc, progressHook, opts.ProgressInterval)

	for _, spec := range specs {
		roots, warning := resolve(fsys, spec)
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)

			continue
		}

		for _, root := range roots {
			if err := fsys.List(ctx, root, opts.IncludeHidden, acc.add); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}

				result.Warnings = append(result.Warnings, fmt.Sprintf("listing %q: %v", root, err))
			}
		}
	}

	files := canonicalFiles(acc.take())

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	files = dedupe(files)

	stats, err := newSizeStats(files)
	if err != nil {
		return nil, err
	}

	if stats.Count == 0 {
		result.Warnings = append(result.Warnings, "no files matched")
	}

	result.Files = files
	result.Stats = stats
	result.Elapsed = time.Since(start)

	return result, nil
}

// resolve expands a single path spec into traversal roots. Specs with glob
// metacharacters expand to their matches; plain paths must exist. A warning
// string is returned instead of roots when the spec matches nothing.
func resolve(fsys FS, spec string) (roots []string, warning string) {
	if strings.ContainsAny(spec, "*?[") {
		matches, err := filepath.Glob(spec)
		if err != nil {
			return nil, fmt.Sprintf("invalid pattern %q: %v", spec, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Sprintf("path %q matched nothing", spec)
		}

		return matches, ""
	}

	if !fsys.Exists(spec) {
		return nil, fmt.Sprintf("path %q does not exist", spec)
	}

	return []string{spec}, ""
}

// canonicalFiles drops directories and canonicalizes file paths so that
// the same file reached via different specs compares equal.
func canonicalFiles(entries []Entry) []FileEntry {
	files := make([]FileEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir {
			continue
		}

		path := entry.Path
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		files = append(files, FileEntry{Path: filepath.Clean(path), Size: entry.Size})
	}

	return files
}

// dedupe removes duplicate files from a sorted, flat list. Duplicates are
// adjacent after sorting, so comparing each entry against the previously
// kept one suffices; do not call this on unsorted input.
func dedupe(files []FileEntry) []FileEntry {
	deduped := files[:0]

	for _, file := range files {
		if len(deduped) > 0 && deduped[len(deduped)-1].Path == file.Path {
			continue
		}

		deduped = append(deduped, file)
	}

	return deduped
}
