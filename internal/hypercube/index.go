package hypercube

import "fmt"

// Index maps keys to positions along one axis.
//
// IndexOf returns -1 for an unknown key; -1 is deliberately usable as an
// out-of-range offset so callers can pass the result straight into a
// bounds-checked access and have it fail there.
type Index interface {
	// Name returns the index name (may be empty).
	Name() string
	// Size returns the number of positions covered by the index.
	Size() int
	// IndexOf returns the position of key, or -1 if the key is absent.
	IndexOf(key string) int
	// KeyOf returns the key at the given position.
	KeyOf(pos int) (string, error)
}

// ListIndex is an Index backed by an ordered key list with a map lookup.
type ListIndex struct {
	name   string
	keys   []string
	lookup map[string]int
}

// NewListIndex builds an index over the given ordered keys.
// Duplicate keys are rejected.
func NewListIndex(name string, keys ...string) (*ListIndex, error) {
	lookup := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := lookup[k]; dup {
			return nil, fmt.Errorf("index %q: duplicate key %q: %w", name, k, ErrArgument)
		}
		lookup[k] = i
	}
	return &ListIndex{name: name, keys: append([]string(nil), keys...), lookup: lookup}, nil
}

// Name returns the index name.
func (ix *ListIndex) Name() string { return ix.name }

// Size returns the number of keys.
func (ix *ListIndex) Size() int { return len(ix.keys) }

// IndexOf returns the position of key, or -1 if absent.
func (ix *ListIndex) IndexOf(key string) int {
	if pos, ok := ix.lookup[key]; ok {
		return pos
	}
	return -1
}

// KeyOf returns the key at pos.
func (ix *ListIndex) KeyOf(pos int) (string, error) {
	if pos < 0 || pos >= len(ix.keys) {
		return "", fmt.Errorf("index %q: position %d of %d: %w", ix.name, pos, len(ix.keys), ErrBounds)
	}
	return ix.keys[pos], nil
}

// SubIndex is a parent Index restricted to the half-open range
// [start, end). end < start denotes a reversed range; start == end is
// invalid, so a zero-length sub-index cannot be expressed this way.
type SubIndex struct {
	parent Index
	start  int
	end    int
}

// NewSubIndex restricts parent to [start, end).
//
// start must lie in [0, parent.Size()). For a forward range end may equal
// parent.Size() exactly (exclusive bound) but not exceed it; for a
// reversed range end may be as low as -1.
func NewSubIndex(parent Index, start, end int) (*SubIndex, error) {
	if parent == nil {
		return nil, fmt.Errorf("sub-index: nil parent: %w", ErrArgument)
	}
	if start == end {
		return nil, fmt.Errorf("sub-index: zero-length range [%d,%d): %w", start, end, ErrArgument)
	}
	size := parent.Size()
	if start < 0 || start >= size {
		return nil, fmt.Errorf("sub-index: start %d outside [0,%d): %w", start, size, ErrBounds)
	}
	if end > start {
		if end > size {
			return nil, fmt.Errorf("sub-index: end %d exceeds parent size %d: %w", end, size, ErrBounds)
		}
	} else if end < -1 {
		return nil, fmt.Errorf("sub-index: reversed end %d below -1: %w", end, ErrBounds)
	}
	return &SubIndex{parent: parent, start: start, end: end}, nil
}

// Name returns the parent's name.
func (ix *SubIndex) Name() string { return ix.parent.Name() }

// Size returns the range extent |end - start|.
func (ix *SubIndex) Size() int {
	if ix.end >= ix.start {
		return ix.end - ix.start
	}
	return ix.start - ix.end
}

// reversed reports whether the range runs backwards.
func (ix *SubIndex) reversed() bool { return ix.end < ix.start }

// IndexOf returns the position of key within the sub-range.
//
// When the parent's position falls outside the range it is returned
// unmodified: the value signals "not in this view" and is, by
// construction, out of range for the sub-index, so a bounds-checked
// caller rejects it naturally.
func (ix *SubIndex) IndexOf(key string) int {
	p := ix.parent.IndexOf(key)
	if p < 0 {
		return p
	}
	if ix.reversed() {
		if p > ix.start || p <= ix.end {
			return p
		}
		return ix.start - p
	}
	if p < ix.start || p >= ix.end {
		return p
	}
	return p - ix.start
}

// KeyOf returns the key at pos, walking forward or backward from start
// depending on the range direction.
func (ix *SubIndex) KeyOf(pos int) (string, error) {
	if pos < 0 || pos >= ix.Size() {
		return "", fmt.Errorf("sub-index: position %d of %d: %w", pos, ix.Size(), ErrBounds)
	}
	if ix.reversed() {
		return ix.parent.KeyOf(ix.start - pos)
	}
	return ix.parent.KeyOf(ix.start + pos)
}

// canonicalRange is a SubIndex chain resolved against its root index:
// position i maps to root position start+i (forward) or start-i
// (reversed, start > end). A plain index canonicalizes to [0, Size()).
//
// Chains are acyclic by construction (a SubIndex can only wrap an
// already-built Index), so the walk terminates without a cycle guard.
type canonicalRange struct {
	root  Index
	start int
	end   int
}

func canonicalize(ix Index) canonicalRange {
	sub, ok := ix.(*SubIndex)
	if !ok {
		return canonicalRange{root: ix, start: 0, end: ix.Size()}
	}
	p := canonicalize(sub.parent)
	if p.end >= p.start {
		return canonicalRange{root: p.root, start: p.start + sub.start, end: p.start + sub.end}
	}
	return canonicalRange{root: p.root, start: p.start - sub.start, end: p.start - sub.end}
}

// sameIndex reports semantic index equality: two (possibly nested)
// sub-index chains are equal iff they resolve to the same root index and
// the same absolute range, however they were constructed.
func sameIndex(a, b Index) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	ca, cb := canonicalize(a), canonicalize(b)
	return ca.root == cb.root && ca.start == cb.start && ca.end == cb.end
}
