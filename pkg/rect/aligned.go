package rect

import "fmt"

// Aligned is an ordered sequence of rectangles aggregated along one
// alignment dimension. Every member's shape is guaranteed to contain the
// alignment dimension; [NewAligned] enforces this once at construction and
// the composite is immutable thereafter, so the invariant holds for the
// value's entire lifetime.
//
// The zero value is not usable - construct with [NewAligned] or [Rect.Along].
type Aligned[D comparable, L Length] struct {
	members []Rect[D, L]
	dim     D
}

// NewAligned creates an aligned composite from members in order, aggregated
// along dim. It fails with an error matching [ErrMissingAlignDim] if dim is
// absent from any member's shape, and propagates [ErrUnalignedShape] if a
// member has no defined shape at all.
//
// The member slice is copied; members themselves are immutable and shared.
func NewAligned[D comparable, L Length](dim D, members ...Rect[D, L]) (Aligned[D, L], error) {
	var (
		union   []D
		inUnion = make(map[D]bool)
		missing = false
	)
	for i, m := range members {
		shape, err := m.Shape()
		if err != nil {
			return Aligned[D, L]{}, fmt.Errorf("align along %v: member %d: %w", dim, i, err)
		}
		if !shape.Has(dim) {
			missing = true
		}
		for _, name := range shape.names {
			if !inUnion[name] {
				inUnion[name] = true
				union = append(union, name)
			}
		}
	}
	if missing {
		return Aligned[D, L]{}, &AlignmentError[D]{Dim: dim, Available: union}
	}
	out := make([]Rect[D, L], len(members))
	copy(out, members)
	return Aligned[D, L]{members: out, dim: dim}, nil
}

// AlignDim returns the dimension along which member extents are summed.
func (a Aligned[D, L]) AlignDim() D { return a.dim }

// Shape derives the composite's shape from its members: for each dimension
// appearing in any member, the aggregate length is the sum across members
// along the alignment dimension and the maximum elsewhere, with a dimension
// absent from a member contributing length zero. The shape is recomputed on
// every call; it is a pure function of the immutable members, never stored.
// Dimension order is first-seen order across members. The error is always
// nil for an aligned composite and exists to satisfy [Rect].
func (a Aligned[D, L]) Shape() (Shape[D, L], error) {
	derived := Shape[D, L]{sizes: make(map[D]L)}
	for _, m := range a.members {
		shape, _ := m.Shape()
		for _, name := range shape.names {
			size := shape.sizes[name]
			acc, seen := derived.sizes[name]
			if !seen {
				derived.names = append(derived.names, name)
			}
			if name == a.dim {
				derived.sizes[name] = acc + size
			} else {
				derived.sizes[name] = max(acc, size)
			}
		}
	}
	return derived, nil
}

// NDim returns the number of dimensions in the derived shape.
func (a Aligned[D, L]) NDim() (int, error) {
	shape, _ := a.Shape()
	return shape.Len(), nil
}

// Then sequences other after this composite. An aligned composite is a
// fully-formed unit with a defined shape, so it enters the result as a
// single member rather than being flattened.
func (a Aligned[D, L]) Then(other Rect[D, L]) Unaligned[D, L] { return sequence[D, L](a, other) }

// Repeat sequences this composite with itself n times, as a unit.
func (a Aligned[D, L]) Repeat(n int) Unaligned[D, L] { return repeated[D, L](a, n) }

// Elevate wraps this composite as the sole member of a new outer composite.
func (a Aligned[D, L]) Elevate() Unaligned[D, L] { return elevated[D, L](a) }

// Along re-aligns this composite as a single member along dim. Fails if dim
// is absent from the derived shape.
func (a Aligned[D, L]) Along(dim D) (Aligned[D, L], error) { return aligned[D, L](a, dim) }

// FillInto pads this composite until its shape equals bounding.
// See [Rect.FillInto].
func (a Aligned[D, L]) FillInto(bounding Shape[D, L], order ...D) (Rect[D, L], error) {
	return fillInto[D, L](a, bounding, order)
}

// Len returns the number of members.
func (a Aligned[D, L]) Len() int { return len(a.members) }

// At returns the member at index i. It panics if i is out of range, like a
// slice index.
func (a Aligned[D, L]) At(i int) Rect[D, L] { return a.members[i] }

// Members returns the member sequence in order.
// The returned slice is a copy and can be safely modified.
func (a Aligned[D, L]) Members() []Rect[D, L] {
	out := make([]Rect[D, L], len(a.members))
	copy(out, a.members)
	return out
}

// String renders the composite as (member + ... @ dim).
func (a Aligned[D, L]) String() string {
	return fmt.Sprintf("(%s @ %v)", joinMembers(a.members), a.dim)
}

func (a Aligned[D, L]) units() []Rect[D, L] { return []Rect[D, L]{a} }
