package rect

// Singular is a leaf rectangle wrapping exactly one shape. It is immutable
// after construction and its identity is structural: two singular
// rectangles with the same dimension→length pairs are interchangeable
// regardless of the order their shapes were built in.
type Singular[D comparable, L Length] struct {
	shape Shape[D, L]
}

// New creates a singular rectangle from a shape.
func New[D comparable, L Length](shape Shape[D, L]) Singular[D, L] {
	return Singular[D, L]{shape: shape}
}

// Of creates a singular rectangle directly from shape entries:
//
//	r := rect.Of(rect.Dim(0, 2), rect.Dim(1, 3))
func Of[D comparable, L Length](entries ...Entry[D, L]) Singular[D, L] {
	return New(NewShape(entries...))
}

// Shape returns the rectangle's shape. The error is always nil for a
// singular rectangle and exists to satisfy [Rect].
func (s Singular[D, L]) Shape() (Shape[D, L], error) { return s.shape, nil }

// NDim returns the number of dimensions in the shape.
func (s Singular[D, L]) NDim() (int, error) { return s.shape.Len(), nil }

// Then sequences other after this rectangle into an unaligned composite.
func (s Singular[D, L]) Then(other Rect[D, L]) Unaligned[D, L] { return sequence[D, L](s, other) }

// Repeat sequences this rectangle with itself n times.
func (s Singular[D, L]) Repeat(n int) Unaligned[D, L] { return repeated[D, L](s, n) }

// Elevate wraps this rectangle as the sole member of an unaligned composite.
func (s Singular[D, L]) Elevate() Unaligned[D, L] { return elevated[D, L](s) }

// Along aligns this rectangle along dim, producing a one-member aligned
// composite. Fails if dim is absent from the shape.
func (s Singular[D, L]) Along(dim D) (Aligned[D, L], error) { return aligned[D, L](s, dim) }

// FillInto pads this rectangle until its shape equals bounding.
// See [Rect.FillInto].
func (s Singular[D, L]) FillInto(bounding Shape[D, L], order ...D) (Rect[D, L], error) {
	return fillInto[D, L](s, bounding, order)
}

// Equal reports whether both rectangles hold equal shapes, independent of
// the order in which the shapes were constructed.
func (s Singular[D, L]) Equal(other Singular[D, L]) bool { return s.shape.Equal(other.shape) }

// Key returns an order-independent digest of the shape. Rectangles that are
// Equal produce identical keys.
func (s Singular[D, L]) Key() string { return s.shape.Key() }

// String renders the rectangle as /name:length, .../.
func (s Singular[D, L]) String() string { return "/" + s.shape.contents() + "/" }

func (s Singular[D, L]) units() []Rect[D, L] { return []Rect[D, L]{s} }
