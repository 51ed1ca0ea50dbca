package hypercube

// flatRolledView treats the wrapped cube as one flattened sequence
// cyclically shifted by a normalized positive shift s: view flat
// position p reads wrapped flat position (p - s + size) % size.
//
// The constructor guarantees two flat-roll wrappers are never nested:
// rolling a flat-rolled view rolls the original wrapped cube with the
// combined shift instead.
type flatRolledView[T Elem] struct {
	viewBase[T]
	shift int // normalized into [1, size)
}

// newFlatRolled builds a flat-rolled view of src. A shift that
// normalizes to zero is the identity and returns src unchanged; a src
// that is itself flat-rolled is unwrapped and the shifts combined.
func newFlatRolled[T Elem](src Cube[T], shift int) (Cube[T], error) {
	if fr, ok := src.(*flatRolledView[T]); ok {
		return newFlatRolled(fr.wrapped, fr.shift+shift)
	}
	s := normalizeShift(shift, src.Size())
	if s == 0 {
		return src, nil
	}
	sh, err := newShape(src.Dimensions())
	if err != nil {
		return nil, err
	}
	v := &flatRolledView[T]{shift: s}
	v.wrapped = src
	v.init(v, sh, viewFlags(src.Flags(), false))
	return v, nil
}

// RollFlat combines shifts rather than nesting: a combination that
// cancels returns the wrapped cube, a zero increment returns the view
// itself, and anything else is a single flat-roll of the original
// wrapped cube by the combined shift.
func (v *flatRolledView[T]) RollFlat(shift int) (Cube[T], error) {
	size := v.shape.size
	s2 := normalizeShift(shift, size)
	if s2 == 0 {
		return v, nil
	}
	if (v.shift+s2)%size == 0 {
		return v.wrapped, nil
	}
	return newFlatRolled(v.wrapped, v.shift+s2)
}

// wrappedPos maps a view flat position to the wrapped flat position.
func (v *flatRolledView[T]) wrappedPos(p int) int {
	size := v.shape.size
	return (p + size - v.shift) % size
}

// WeakGetAt reads through the shift translation.
func (v *flatRolledView[T]) WeakGetAt(pos int) T {
	return v.wrapped.WeakGetAt(v.wrappedPos(pos))
}

// WeakSetAt writes through the shift translation.
func (v *flatRolledView[T]) WeakSetAt(pos int, value T) {
	v.wrapped.WeakSetAt(v.wrappedPos(pos), value)
}

// ToFlattened special-cases the two contiguous regimes around the shift
// boundary: a run entirely on one side translates to a single wrapped
// call, anything else splits into exactly two at the wrap point.
func (v *flatRolledView[T]) ToFlattened(srcPos int, dst []T, dstPos, length int) error {
	if err := v.shape.checkRun(srcPos, length); err != nil {
		return err
	}
	if err := checkBuffer(dst, dstPos, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	s, size := v.shift, v.shape.size
	switch {
	case srcPos+length <= s:
		return v.wrapped.ToFlattened(srcPos+size-s, dst, dstPos, length)
	case srcPos >= s:
		return v.wrapped.ToFlattened(srcPos-s, dst, dstPos, length)
	default:
		tail := s - srcPos
		if err := v.wrapped.ToFlattened(srcPos+size-s, dst, dstPos, tail); err != nil {
			return err
		}
		return v.wrapped.ToFlattened(0, dst, dstPos+tail, length-tail)
	}
}

// FromFlattened mirrors ToFlattened's two-regime split for writes.
func (v *flatRolledView[T]) FromFlattened(src []T, srcPos, dstPos, length int) error {
	if err := v.shape.checkRun(dstPos, length); err != nil {
		return err
	}
	if err := checkBuffer(src, srcPos, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	s, size := v.shift, v.shape.size
	switch {
	case dstPos+length <= s:
		return v.wrapped.FromFlattened(src, srcPos, dstPos+size-s, length)
	case dstPos >= s:
		return v.wrapped.FromFlattened(src, srcPos, dstPos-s, length)
	default:
		tail := s - dstPos
		if err := v.wrapped.FromFlattened(src, srcPos, dstPos+size-s, tail); err != nil {
			return err
		}
		return v.wrapped.FromFlattened(src, srcPos+tail, 0, length-tail)
	}
}
