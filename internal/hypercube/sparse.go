package hypercube

import (
	"fmt"
	"sync/atomic"
)

// sparseChunkLen is the flat extent of one lazily allocated chunk.
const sparseChunkLen = 1024

// sparseCube is the sparse storage cube: flat space divided into
// fixed-size chunks allocated on first write. Unwritten elements read as
// the zero value of T.
//
// Chunk allocation is lock-free: concurrent first writes to the same
// chunk race on a compare-and-swap and the loser adopts the winner's
// chunk. Views over a sparse cube therefore must not assume the backing
// store is materialized before first write, and none of them do.
type sparseCube[T Elem] struct {
	base[T]
	chunks []atomic.Pointer[[]T]
	fence  atomic.Uint32
}

// NewSparse creates a sparse cube with the given dimensions. No element
// storage is allocated until the first write.
func NewSparse[T Elem](dims ...*Dimension) (Cube[T], error) {
	sh, err := newShape(dims)
	if err != nil {
		return nil, err
	}
	n := (sh.size + sparseChunkLen - 1) / sparseChunkLen
	s := &sparseCube[T]{chunks: make([]atomic.Pointer[[]T], n)}
	s.init(s, sh, Flags{Contiguous: false, Aligned: true, OwnsData: true, Writeable: true})
	return s, nil
}

// chunkAt returns the chunk covering flat position pos, or nil when it
// has not been materialized.
func (s *sparseCube[T]) chunkAt(pos int) []T {
	if p := s.chunks[pos/sparseChunkLen].Load(); p != nil {
		return *p
	}
	return nil
}

// ensureChunk materializes the chunk covering pos, tolerating a racing
// allocation from another goroutine.
func (s *sparseCube[T]) ensureChunk(pos int) []T {
	slot := &s.chunks[pos/sparseChunkLen]
	if p := slot.Load(); p != nil {
		return *p
	}
	fresh := make([]T, sparseChunkLen)
	if slot.CompareAndSwap(nil, &fresh) {
		return fresh
	}
	return *slot.Load()
}

// GetAt returns the element at a flat offset, zero when unwritten.
func (s *sparseCube[T]) GetAt(pos int) (T, error) {
	if pos < 0 || pos >= s.shape.size {
		var zero T
		return zero, fmt.Errorf("sparse: get at %d of %d: %w", pos, s.shape.size, ErrBounds)
	}
	s.PreRead()
	return s.WeakGetAt(pos), nil
}

// SetAt stores the element at a flat offset, materializing its chunk.
func (s *sparseCube[T]) SetAt(pos int, value T) error {
	if pos < 0 || pos >= s.shape.size {
		return fmt.Errorf("sparse: set at %d of %d: %w", pos, s.shape.size, ErrBounds)
	}
	s.WeakSetAt(pos, value)
	s.PostWrite()
	return nil
}

// WeakGetAt reads without barrier; unmaterialized chunks read as zero.
func (s *sparseCube[T]) WeakGetAt(pos int) T {
	if c := s.chunkAt(pos); c != nil {
		return c[pos%sparseChunkLen]
	}
	var zero T
	return zero
}

// WeakSetAt writes without barrier, materializing the chunk.
func (s *sparseCube[T]) WeakSetAt(pos int, value T) {
	s.ensureChunk(pos)[pos%sparseChunkLen] = value
}

// ToFlattened copies a contiguous run out chunk by chunk; runs over
// unmaterialized chunks fill with zeros.
func (s *sparseCube[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	if err := s.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	s.PreRead()
	var zero T
	for copied := 0; copied < length; {
		pos := srcPos + copied
		n := sparseChunkLen - pos%sparseChunkLen
		if rem := length - copied; rem < n {
			n = rem
		}
		if c := s.chunkAt(pos); c != nil {
			off := pos % sparseChunkLen
			copy(dst[dstPos+copied:dstPos+copied+n], c[off:off+n])
		} else {
			for i := 0; i < n; i++ {
				dst[dstPos+copied+i] = zero
			}
		}
		copied += n
	}
	return nil
}

// FromFlattened copies a contiguous run in chunk by chunk.
func (s *sparseCube[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	if err := s.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	for copied := 0; copied < length; {
		pos := dstPos + copied
		n := sparseChunkLen - pos%sparseChunkLen
		if rem := length - copied; rem < n {
			n = rem
		}
		c := s.ensureChunk(pos)
		off := pos % sparseChunkLen
		copy(c[off:off+n], src[srcPos+copied:srcPos+copied+n])
		copied += n
	}
	s.PostWrite()
	return nil
}

// PreRead is the read visibility barrier.
func (s *sparseCube[T]) PreRead() { _ = s.fence.Load() }

// PostWrite is the write visibility barrier.
func (s *sparseCube[T]) PostWrite() { s.fence.Add(1) }
