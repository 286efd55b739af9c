package collector

import (
	"errors"
	"fmt"
	"sync"
)

// ErrOverflow reports a byte total exceeding the representable range.
// It is a hard error: a wrapped total must never be formatted.
var ErrOverflow = errors.New("amount too large to format")

// FileEntry is a regular file identified by its canonical full path.
type FileEntry struct {
	// Path is the canonical absolute path; the deduplication identity.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size uint64 `json:"size"`
}

// SizeStats aggregates sizes over a deduplicated file set. Computed once
// per invocation, never persisted.
type SizeStats struct {
	// Count is the number of files.
	Count int64 `json:"count"`
	// Sum is the cumulative size in bytes.
	Sum uint64 `json:"sum"`
	// Average is Sum/Count, zero when Count is zero.
	Average uint64 `json:"average"`
	// Min is the smallest file size.
	Min uint64 `json:"min"`
	// Max is the largest file size.
	Max uint64 `json:"max"`
}

// newSizeStats computes statistics over entries, which must already be
// deduplicated. Summation that wraps around reports ErrOverflow.
func newSizeStats(entries []FileEntry) (SizeStats, error) {
	var stats SizeStats

	for i, entry := range entries {
		if stats.Sum+entry.Size < stats.Sum {
			return SizeStats{}, fmt.Errorf("%w: summing %d files wraps uint64", ErrOverflow, len(entries))
		}

		stats.Sum += entry.Size
		stats.Count++

		if i == 0 || entry.Size < stats.Min {
			stats.Min = entry.Size
		}

		if entry.Size > stats.Max {
			stats.Max = entry.Size
		}
	}

	if stats.Count > 0 {
		stats.Average = stats.Sum / uint64(stats.Count)
	}

	return stats, nil
}

// accumulator gathers entries from concurrent fastwalk callbacks using a
// mutex.
type accumulator struct {
	mu        sync.Mutex // Protect concurrent access
	entries   []Entry
	fileCount int64
	byteCount uint64
}

// add records one observed entry. Protected by a mutex since fastwalk
// calls the walk callback from multiple goroutines concurrently.
func (a *accumulator) add(entry Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = append(a.entries, entry)

	if !entry.IsDir {
		a.fileCount++
		a.byteCount += entry.Size
	}
}

// snapshot returns the running file and byte counts for progress display.
func (a *accumulator) snapshot() (files int64, bytes uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.fileCount, a.byteCount
}

// take returns the gathered entries. Call only after all walks finished.
func (a *accumulator) take() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.entries
}
