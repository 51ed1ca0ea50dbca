package hypercube

import "fmt"

// BitSet is a fixed-length bit vector over words of 64, used as the
// backing store of the boolean bit cube and as a mask source.
type BitSet struct {
	words []uint64
	size  int
}

// NewBitSet creates a bit set of the given length, all bits clear.
func NewBitSet(size int) (*BitSet, error) {
	if size < 0 {
		return nil, fmt.Errorf("bitset: negative size %d: %w", size, ErrArgument)
	}
	return &BitSet{words: make([]uint64, (size+63)/64), size: size}, nil
}

// BitSetOf creates a bit set from the given bits.
func BitSetOf(bits ...bool) *BitSet {
	bs, _ := NewBitSet(len(bits))
	for i, b := range bits {
		if b {
			bs.words[i/64] |= 1 << (i % 64)
		}
	}
	return bs
}

// Size returns the number of bits.
func (bs *BitSet) Size() int { return bs.size }

// Get returns bit i.
func (bs *BitSet) Get(i int) (bool, error) {
	if i < 0 || i >= bs.size {
		return false, fmt.Errorf("bitset: bit %d of %d: %w", i, bs.size, ErrBounds)
	}
	return bs.get(i), nil
}

// Set stores bit i.
func (bs *BitSet) Set(i int, v bool) error {
	if i < 0 || i >= bs.size {
		return fmt.Errorf("bitset: bit %d of %d: %w", i, bs.size, ErrBounds)
	}
	bs.set(i, v)
	return nil
}

func (bs *BitSet) get(i int) bool {
	return bs.words[i/64]&(1<<(i%64)) != 0
}

func (bs *BitSet) set(i int, v bool) {
	if v {
		bs.words[i/64] |= 1 << (i % 64)
	} else {
		bs.words[i/64] &^= 1 << (i % 64)
	}
}
