package hypercube

import "fmt"

// Accessor is a per-axis selector used to build a sliced view: either a
// Coordinate (fixes the axis to one index, dropping it from the view's
// shape) or a Span (restricts the axis to a contiguous sub-range,
// keeping it). Accessors are built through Dimension.At and
// Dimension.Span so they are always validated against their axis.
type Accessor interface {
	// Dimension returns the axis the accessor is bound to.
	Dimension() *Dimension

	accessor()
}

// Coordinate fixes one axis to a single index; applying it removes that
// axis from the resulting view's shape.
type Coordinate struct {
	dim   *Dimension
	index int
}

// Dimension returns the axis the coordinate is bound to.
func (c *Coordinate) Dimension() *Dimension { return c.dim }

// Value returns the fixed index.
func (c *Coordinate) Value() int { return c.index }

func (c *Coordinate) accessor() {}

// String returns a human-readable representation of the coordinate.
func (c *Coordinate) String() string {
	return fmt.Sprintf("%v@%d", c.dim, c.index)
}

// Span restricts one axis to the contiguous sub-range [start, end);
// applying it keeps the axis at length end-start.
type Span struct {
	dim   *Dimension
	start int
	end   int
}

// Dimension returns the axis the span is bound to.
func (s *Span) Dimension() *Dimension { return s.dim }

// Start returns the inclusive lower bound.
func (s *Span) Start() int { return s.start }

// End returns the exclusive upper bound.
func (s *Span) End() int { return s.end }

// Len returns the span extent end-start.
func (s *Span) Len() int { return s.end - s.start }

func (s *Span) accessor() {}

// String returns a human-readable representation of the span.
func (s *Span) String() string {
	return fmt.Sprintf("%v[%d:%d)", s.dim, s.start, s.end)
}

// Roll is a signed cyclic shift of one axis. A zero-valued Roll (nil
// dimension) is a no-op placeholder for axes that are not rolled.
type Roll struct {
	dim   *Dimension
	shift int
}

// NewRoll returns a roll of the given axis by shift positions. The shift
// may be any signed value; it is normalized into [0, length) when the
// roll is applied.
func NewRoll(dim *Dimension, shift int) (Roll, error) {
	if dim == nil {
		return Roll{}, fmt.Errorf("roll: nil dimension: %w", ErrArgument)
	}
	return Roll{dim: dim, shift: shift}, nil
}

// Dimension returns the rolled axis, or nil for a no-op roll.
func (r Roll) Dimension() *Dimension { return r.dim }

// Shift returns the raw, un-normalized shift.
func (r Roll) Shift() int { return r.shift }

// normalizeShift maps an arbitrary signed shift into [0, n); a zero-size
// axis always normalizes to 0.
func normalizeShift(shift, n int) int {
	if n <= 0 {
		return 0
	}
	return ((shift % n) + n) % n
}
