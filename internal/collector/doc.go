// Package collector resolves path specifications into a deduplicated list
// of regular files and aggregates statistics over their sizes.
//
// Directory trees are walked with fastwalk for parallel traversal; the
// final sort and adjacent-duplicate pass fixes a total order regardless of
// traversal timing.
package collector
