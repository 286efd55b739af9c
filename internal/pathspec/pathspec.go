// Package pathspec models path specifications as an explicit tree of
// strings and flattens them into a flat path list for collection.
package pathspec

import "strings"

// Spec is a path specification: either a single path string or a nested
// sequence of further specs.
type Spec interface {
	isSpec()
}

// Scalar is a single path string, the leaf of a spec tree.
type Scalar string

// Sequence is an ordered list of specs, possibly nested.
type Sequence []Spec

func (Scalar) isSpec()   {}
func (Sequence) isSpec() {}

// Expand flattens spec depth-first into a flat list of path strings.
// Scalars are terminal, so any finite nesting terminates; already-flat
// input comes back unchanged.
func Expand(spec Spec) []string {
	switch s := spec.(type) {
	case Scalar:
		return []string{string(s)}
	case Sequence:
		out := make([]string, 0, len(s))
		for _, child := range s {
			out = append(out, Expand(child)...)
		}

		return out
	default:
		return nil
	}
}

// FromStrings builds a Sequence from CLI tokens. A token may carry several
// comma-joined paths ("a,b,c"), which become a nested sequence of scalars;
// empty segments are dropped.
func FromStrings(tokens []string) Sequence {
	seq := make(Sequence, 0, len(tokens))

	for _, token := range tokens {
		parts := strings.Split(token, ",")
		if len(parts) == 1 {
			seq = append(seq, Scalar(token))

			continue
		}

		inner := make(Sequence, 0, len(parts))

		for _, part := range parts {
			if part == "" {
				continue
			}

			inner = append(inner, Scalar(part))
		}

		seq = append(seq, inner)
	}

	return seq
}
