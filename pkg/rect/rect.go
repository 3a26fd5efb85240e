package rect

import (
	"errors"
	"fmt"
)

var (
	// ErrUnalignedShape is returned by [Rect.Shape], [Rect.NDim], and
	// [Rect.FillInto] on an [Unaligned] composite. No aggregation dimension
	// has been chosen, so the composite has no defined shape; callers must
	// align the composite with [Rect.Along] first.
	ErrUnalignedShape = errors.New("unaligned composite has no defined shape")

	// ErrMissingAlignDim is matched (via [errors.Is]) by the error returned
	// from [NewAligned] and [Rect.Along] when the alignment dimension is
	// absent from at least one member's shape. The concrete error is an
	// [AlignmentError] carrying the offending dimension and the union of
	// dimensions found across members.
	ErrMissingAlignDim = errors.New("alignment dimension missing from member shape")

	// ErrMissingFillDim is returned (wrapped) by [Rect.FillInto] when a
	// dimension in the fill order is absent from the current shape or from
	// the bounding shape.
	ErrMissingFillDim = errors.New("fill dimension missing from current or bounding shape")
)

// AlignmentError reports a failed aligned-composite construction: the
// requested alignment dimension was missing from at least one member.
// Available lists the union of dimension names actually present across the
// members, in first-seen order, for diagnosis.
//
// AlignmentError matches [ErrMissingAlignDim] under [errors.Is].
type AlignmentError[D comparable] struct {
	Dim       D
	Available []D
}

func (e *AlignmentError[D]) Error() string {
	return fmt.Sprintf(
		"cannot align along dimension %v: missing from at least one member (dimensions found: %v)",
		e.Dim, e.Available,
	)
}

// Is reports whether target is [ErrMissingAlignDim], enabling sentinel
// matching through errors.Is without losing the diagnostic fields.
func (e *AlignmentError[D]) Is(target error) bool { return target == ErrMissingAlignDim }

// Rect is the shape-bearing capability shared by all rectangle variants.
// It is a closed interface: the only implementations are [Singular],
// [Unaligned], and [Aligned]. All composition operations are total - they
// accept any variant uniformly - while shape queries are only defined for
// variants with an alignment ([Singular] and [Aligned]).
//
// Every operation returns a new value; implementations are immutable.
type Rect[D comparable, L Length] interface {
	// Shape returns the rectangle's shape. An [Unaligned] composite has no
	// defined shape and returns [ErrUnalignedShape].
	Shape() (Shape[D, L], error)

	// NDim returns the number of dimensions in the shape, propagating
	// [ErrUnalignedShape] where the shape is undefined.
	NDim() (int, error)

	// Then sequences other after the receiver, concatenating both
	// constituent sequences into a new unaligned composite.
	Then(other Rect[D, L]) Unaligned[D, L]

	// Repeat concatenates the receiver's constituent sequence to itself n
	// times. Repeat(1) wraps the receiver's units once; n <= 0 yields an
	// empty composite.
	Repeat(n int) Unaligned[D, L]

	// Elevate wraps the receiver as the sole member of a new unaligned
	// composite, one nesting level deeper, ready to be aligned along a
	// fresh dimension.
	Elevate() Unaligned[D, L]

	// Along aligns the receiver's constituent sequence along dim, failing
	// with an error matching [ErrMissingAlignDim] if any member's shape
	// lacks dim.
	Along(dim D) (Aligned[D, L], error)

	// FillInto pads the rectangle dimension by dimension until its shape
	// equals bounding. Dimensions are processed in order; when no order is
	// given, the current shape's own key order is used. The result is an
	// [Aligned] composite whenever at least one dimension is processed.
	FillInto(bounding Shape[D, L], order ...D) (Rect[D, L], error)

	// String renders the rectangle for diagnostics.
	String() string

	// units returns the constituent sequence the variant contributes when
	// combined: itself for Singular and Aligned, the member list for
	// Unaligned. Unexported to keep the variant set closed.
	units() []Rect[D, L]
}

// sequence implements Then for every variant: the two constituent sequences
// are concatenated in order into a fresh unaligned composite.
func sequence[D comparable, L Length](a, b Rect[D, L]) Unaligned[D, L] {
	ua, ub := a.units(), b.units()
	members := make([]Rect[D, L], 0, len(ua)+len(ub))
	members = append(members, ua...)
	members = append(members, ub...)
	return Unaligned[D, L]{members: members}
}

// repeated implements Repeat for every variant. n <= 0 yields an empty
// composite, matching the semantics of repeating a sequence zero times.
func repeated[D comparable, L Length](r Rect[D, L], n int) Unaligned[D, L] {
	if n <= 0 {
		return Unaligned[D, L]{}
	}
	u := r.units()
	members := make([]Rect[D, L], 0, n*len(u))
	for i := 0; i < n; i++ {
		members = append(members, u...)
	}
	return Unaligned[D, L]{members: members}
}

// elevated implements Elevate for every variant: the receiver itself - not
// its constituent sequence - becomes the sole member, so an existing
// composite is wrapped as an opaque unit.
func elevated[D comparable, L Length](r Rect[D, L]) Unaligned[D, L] {
	return Unaligned[D, L]{members: []Rect[D, L]{r}}
}

// aligned implements Along for every variant by aligning the constituent
// sequence, so an Aligned operand is re-wrapped as a single member while an
// Unaligned operand contributes its member list directly.
func aligned[D comparable, L Length](r Rect[D, L], dim D) (Aligned[D, L], error) {
	return NewAligned(dim, r.units()...)
}
