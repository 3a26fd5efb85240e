package rect

import "strings"

// Unaligned is an ordered sequence of rectangles with no chosen aggregation
// dimension. It supports sequencing and index access but has no defined
// shape: [Unaligned.Shape] and [Unaligned.NDim] fail with
// [ErrUnalignedShape] until the composite is aligned with
// [Unaligned.Along].
//
// The zero value is the empty composite.
type Unaligned[D comparable, L Length] struct {
	members []Rect[D, L]
}

// NewUnaligned creates an unaligned composite from members in order.
// The member slice is copied; members themselves are immutable and shared.
func NewUnaligned[D comparable, L Length](members ...Rect[D, L]) Unaligned[D, L] {
	out := make([]Rect[D, L], len(members))
	copy(out, members)
	return Unaligned[D, L]{members: out}
}

// Shape always fails with [ErrUnalignedShape]: without an alignment
// dimension there is no rule for aggregating member extents.
func (u Unaligned[D, L]) Shape() (Shape[D, L], error) {
	return Shape[D, L]{}, ErrUnalignedShape
}

// NDim always fails with [ErrUnalignedShape].
func (u Unaligned[D, L]) NDim() (int, error) { return 0, ErrUnalignedShape }

// Then sequences other after this composite. This composite's members are
// flattened into the result; it is not preserved as a nested unit.
func (u Unaligned[D, L]) Then(other Rect[D, L]) Unaligned[D, L] { return sequence[D, L](u, other) }

// Repeat concatenates this composite's members to themselves n times.
func (u Unaligned[D, L]) Repeat(n int) Unaligned[D, L] { return repeated[D, L](u, n) }

// Elevate wraps this composite as the sole member of a new outer composite.
func (u Unaligned[D, L]) Elevate() Unaligned[D, L] { return elevated[D, L](u) }

// Along aligns the members along dim, producing the aligned composite with
// the same member sequence. Fails if dim is absent from any member's shape.
func (u Unaligned[D, L]) Along(dim D) (Aligned[D, L], error) { return aligned[D, L](u, dim) }

// FillInto always fails with [ErrUnalignedShape]: filling is relative to
// the current shape, which an unaligned composite does not have.
func (u Unaligned[D, L]) FillInto(Shape[D, L], ...D) (Rect[D, L], error) {
	return nil, ErrUnalignedShape
}

// Len returns the number of members.
func (u Unaligned[D, L]) Len() int { return len(u.members) }

// At returns the member at index i. It panics if i is out of range, like a
// slice index.
func (u Unaligned[D, L]) At(i int) Rect[D, L] { return u.members[i] }

// Members returns the member sequence in order.
// The returned slice is a copy and can be safely modified.
func (u Unaligned[D, L]) Members() []Rect[D, L] {
	out := make([]Rect[D, L], len(u.members))
	copy(out, u.members)
	return out
}

// String renders the composite as (member + ... @ ?), the ? marking the
// missing alignment dimension.
func (u Unaligned[D, L]) String() string {
	return "(" + joinMembers(u.members) + " @ ?)"
}

func (u Unaligned[D, L]) units() []Rect[D, L] { return u.members }

// joinMembers renders member strings separated by " + ".
func joinMembers[D comparable, L Length](members []Rect[D, L]) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " + ")
}
