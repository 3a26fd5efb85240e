package rect

import "fmt"

// fillInto implements FillInto for the shape-bearing variants.
//
// The running result starts as r itself. For each dimension in the fill
// order, a padding rectangle covering the remaining gap along that
// dimension is sequenced after the running result, and the pair is aligned
// along that dimension. The padding rectangle spans the bounding length in
// every already-processed dimension and the current length in every
// not-yet-processed dimension, so each step closes exactly one dimension's
// gap without disturbing the others. When the bounding shape is at least as
// large as the current shape everywhere, the final derived shape equals the
// bounding shape for any fill order.
//
// A bounding length smaller than the current length yields a
// negative-length padding rectangle; the arithmetic is well-defined but the
// result is the caller's responsibility.
func fillInto[D comparable, L Length](r Rect[D, L], bounding Shape[D, L], order []D) (Rect[D, L], error) {
	current, err := r.Shape()
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		order = current.Names()
	}
	for _, name := range order {
		if !current.Has(name) {
			return nil, fmt.Errorf("fill dimension %v not in current shape: %w", name, ErrMissingFillDim)
		}
		if !bounding.Has(name) {
			return nil, fmt.Errorf("fill dimension %v not in bounding shape: %w", name, ErrMissingFillDim)
		}
	}

	// prv holds dimensions already padded to their bounding length, nxt the
	// ones still at their current length. Each step moves one dimension
	// from nxt to prv.
	prv := make(map[D]bool, len(order))
	nxt := make(map[D]bool, current.Len())
	for _, name := range current.names {
		nxt[name] = true
	}

	var filled Rect[D, L] = r
	for _, name := range order {
		entries := make([]Entry[D, L], 0, bounding.Len()+current.Len())
		for _, e := range bounding.Entries() {
			if prv[e.Name] {
				entries = append(entries, e)
			}
		}
		for _, e := range current.Entries() {
			if nxt[e.Name] {
				entries = append(entries, e)
			}
		}
		want, _ := bounding.Get(name)
		have, _ := current.Get(name)
		entries = append(entries, Dim(name, want-have))

		step, err := filled.Then(New(NewShape(entries...))).Along(name)
		if err != nil {
			return nil, fmt.Errorf("fill along %v: %w", name, err)
		}
		filled = step
		delete(nxt, name)
		prv[name] = true
	}
	return filled, nil
}
