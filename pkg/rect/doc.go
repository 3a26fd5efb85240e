// Package rect provides composable N-dimensional rectangles.
//
// # Overview
//
// A rectangle is described by its shape: an ordered mapping from dimension
// name to dimension length. Rectangles are algebraic values - they are
// immutable after construction and combine into larger rectangles through a
// small set of operations: sequencing ([Rect.Then]), repetition
// ([Rect.Repeat]), elevation ([Rect.Elevate]), alignment ([Rect.Along]), and
// filling ([Rect.FillInto]).
//
// Dimension names can be any comparable type (ints, strings, custom IDs) and
// lengths any integer or float type, so the same algebra serves pixel grids,
// abstract layout units, and physical measurements alike.
//
// # The three variants
//
// [Rect] is a closed interface with exactly three implementations:
//
//   - [Singular]: a leaf rectangle wrapping one [Shape].
//   - [Unaligned]: an ordered sequence of rectangles with no chosen
//     aggregation dimension, and therefore no defined shape.
//   - [Aligned]: an ordered sequence of rectangles plus an alignment
//     dimension. Its shape is derived on demand: member lengths are summed
//     along the alignment dimension and maxed everywhere else.
//
// Sequencing two rectangles produces an [Unaligned] composite; the shape of
// the combination is only defined once a dimension is chosen with
// [Rect.Along]. A value's alignment status flows through the operations as
//
//	Singular → (Then/Repeat/Elevate) → Unaligned → (Along) → Aligned →
//	(Then/Repeat with others) → Unaligned → (Along) → Aligned → ...
//
// Shape queries are only answered in the Aligned (or Singular) state;
// [Rect.Shape] and [Rect.NDim] on an Unaligned composite return
// [ErrUnalignedShape].
//
// # Constituent sequences
//
// When rectangles combine, each operand contributes its constituent
// sequence: a [Singular] contributes itself, an [Aligned] composite
// contributes itself as a single opaque unit (it already has a defined
// shape), and an [Unaligned] composite contributes its member list. This
// one-level flattening keeps sequencing associative without ever nesting
// unaligned composites inside unaligned composites, while aligned composites
// survive as units:
//
//	a.Then(b).Then(c) // members: [a, b, c], not [[a, b], c]
//
// # Alignment
//
// [Rect.Along] and [NewAligned] enforce one invariant at construction time:
// every member's shape must contain the alignment dimension. Violations fail
// immediately with an error matching [ErrMissingAlignDim] that lists the
// dimensions actually present, so an Aligned value is valid for its entire
// lifetime. Dimensions other than the alignment dimension may differ freely
// between members; a dimension absent from some member contributes length
// zero to the aggregation.
//
// # Filling
//
// [Rect.FillInto] grows a rectangle to a target bounding shape by padding it
// one dimension at a time: for each dimension in the fill order, a padding
// rectangle covering the remaining gap is sequenced after the running result
// and the pair is aligned along that dimension. As long as the bounding
// shape is at least as large as the current shape in every dimension, the
// result's shape equals the bounding shape exactly, for any fill order.
//
// # Concurrency
//
// All values are immutable after construction, so rectangles can be shared
// and read from any number of goroutines without synchronization. Every
// operation is a pure function returning a new value.
package rect
