package collector

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file of the given size, creating parent directories
// as needed.
func writeFile(t *testing.T, path string, size int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestCollectStats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 100)
	writeFile(t, filepath.Join(dir, "b.txt"), 1500)
	writeFile(t, filepath.Join(dir, "sub", "c.bin"), 1_500_000)

	result, err := Collect(context.Background(), []string{dir}, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Stats.Count)
	assert.Equal(t, uint64(1_501_600), result.Stats.Sum)
	assert.Equal(t, uint64(100), result.Stats.Min)
	assert.Equal(t, uint64(1_500_000), result.Stats.Max)
	assert.Equal(t, uint64(500_533), result.Stats.Average)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Files, 3)
}

func TestCollectDeduplicatesOverlappingSpecs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 10)
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), 20)

	specs := []string{
		dir,
		filepath.Join(dir, "sub"),
		filepath.Join(dir, "sub", "b.txt"),
	}

	result, err := Collect(context.Background(), specs, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Stats.Count)
	assert.Equal(t, uint64(30), result.Stats.Sum)

	seen := make(map[string]struct{}, len(result.Files))
	for _, file := range result.Files {
		_, dup := seen[file.Path]
		assert.False(t, dup, "duplicate path %q", file.Path)
		seen[file.Path] = struct{}{}
	}
}

func TestCollectOrderIndependence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one", "a.txt"), 11)
	writeFile(t, filepath.Join(dir, "two", "b.txt"), 22)

	forward := []string{filepath.Join(dir, "one"), filepath.Join(dir, "two"), dir}
	backward := []string{dir, filepath.Join(dir, "two"), filepath.Join(dir, "one")}

	first, err := Collect(context.Background(), forward, Options{}, nil)
	require.NoError(t, err)

	second, err := Collect(context.Background(), backward, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.Files, second.Files)
}

func TestCollectMissingPathIsWarning(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 5)

	missing := filepath.Join(dir, "nope")

	result, err := Collect(context.Background(), []string{missing, dir}, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(5), result.Stats.Sum)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "nope")
}

func TestCollectNothingMatched(t *testing.T) {
	dir := t.TempDir()

	result, err := Collect(context.Background(), []string{filepath.Join(dir, "nope")}, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, SizeStats{}, result.Stats)
	assert.Empty(t, result.Files)
	assert.Len(t, result.Warnings, 2)
}

func TestCollectHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "visible.txt"), 1)
	writeFile(t, filepath.Join(dir, ".hidden"), 2)
	writeFile(t, filepath.Join(dir, ".config", "settings"), 4)

	result, err := Collect(context.Background(), []string{dir}, Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.Stats.Sum)

	result, err = Collect(context.Background(), []string{dir}, Options{IncludeHidden: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), result.Stats.Sum)
}

func TestCollectHiddenRootIsListed(t *testing.T) {
	dir := t.TempDir()
	hiddenDir := filepath.Join(dir, ".cache")
	writeFile(t, filepath.Join(hiddenDir, "blob"), 9)

	result, err := Collect(context.Background(), []string{hiddenDir}, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(9), result.Stats.Sum)
}

func TestCollectGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 3)
	writeFile(t, filepath.Join(dir, "b.txt"), 4)
	writeFile(t, filepath.Join(dir, "c.bin"), 100)

	result, err := Collect(context.Background(), []string{filepath.Join(dir, "*.txt")}, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Stats.Count)
	assert.Equal(t, uint64(7), result.Stats.Sum)
}

func TestCollectGlobNoMatches(t *testing.T) {
	dir := t.TempDir()

	result, err := Collect(context.Background(), []string{filepath.Join(dir, "*.log")}, Options{}, nil)
	require.NoError(t, err)

	assert.Zero(t, result.Stats.Sum)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "matched nothing")
}

func TestCollectSingleFileSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.dat")
	writeFile(t, path, 42)

	result, err := Collect(context.Background(), []string{path}, Options{}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Stats.Count)
	assert.Equal(t, uint64(42), result.Stats.Sum)
}

func TestCollectCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, []string{dir}, Options{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSizeStatsEmpty(t *testing.T) {
	stats, err := newSizeStats(nil)
	require.NoError(t, err)
	assert.Equal(t, SizeStats{}, stats)
}

func TestSizeStatsOverflow(t *testing.T) {
	entries := []FileEntry{
		{Path: "a", Size: math.MaxUint64},
		{Path: "b", Size: 1},
	}

	_, err := newSizeStats(entries)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDedupeAssumesSortedInput(t *testing.T) {
	files := []FileEntry{
		{Path: "/a", Size: 1},
		{Path: "/a", Size: 1},
		{Path: "/b", Size: 2},
		{Path: "/b", Size: 2},
		{Path: "/c", Size: 3},
	}

	deduped := dedupe(files)

	assert.Equal(t, []FileEntry{
		{Path: "/a", Size: 1},
		{Path: "/b", Size: 2},
		{Path: "/c", Size: 3},
	}, deduped)
}
