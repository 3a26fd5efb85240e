package rect_test

import (
	"errors"
	"testing"

	"github.com/matzehuels/ndrect/pkg/rect"
)

func TestUnalignedShapeUndefined(t *testing.T) {
	one := rect.Of(rect.Dim(0, 1))

	tests := []struct {
		name      string
		composite rect.Unaligned[int, int]
	}{
		{name: "zero members", composite: rect.NewUnaligned[int, int]()},
		{name: "one member", composite: rect.NewUnaligned[int, int](one)},
		{name: "two members", composite: one.Then(one)},
		{name: "zero value", composite: rect.Unaligned[int, int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.composite.Shape(); !errors.Is(err, rect.ErrUnalignedShape) {
				t.Errorf("Shape() error = %v, want ErrUnalignedShape", err)
			}
			if _, err := tt.composite.NDim(); !errors.Is(err, rect.ErrUnalignedShape) {
				t.Errorf("NDim() error = %v, want ErrUnalignedShape", err)
			}
		})
	}
}

func TestThenFlattening(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	y := rect.Of(rect.Dim(0, 2))
	z := rect.Of(rect.Dim(0, 3))

	// Unaligned intermediates flatten: the member sequence is the
	// concatenation of the three constituent sequences.
	seq := x.Then(y).Then(z)
	if got := seq.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for i, want := range []rect.Singular[int, int]{x, y, z} {
		member, ok := seq.At(i).(rect.Singular[int, int])
		if !ok {
			t.Fatalf("At(%d) is %T, want Singular", i, seq.At(i))
		}
		if !member.Equal(want) {
			t.Errorf("At(%d) = %v, want %v", i, member, want)
		}
	}
}

func TestThenPreservesAlignedAsUnit(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	y := rect.Of(rect.Dim(0, 2))
	row, err := x.Then(y).Along(0)
	if err != nil {
		t.Fatalf("Along(0) error = %v", err)
	}

	seq := x.Then(row).Then(y)
	if got := seq.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	unit, ok := seq.At(1).(rect.Aligned[int, int])
	if !ok {
		t.Fatalf("At(1) is %T, want Aligned", seq.At(1))
	}
	if got := unit.Len(); got != 2 {
		t.Errorf("aligned unit Len() = %d, want 2", got)
	}
}

func TestRepeat(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	pair := x.Then(x) // two units

	tests := []struct {
		name    string
		value   rect.Rect[int, int]
		n       int
		wantLen int
	}{
		{name: "singular zero times", value: x, n: 0, wantLen: 0},
		{name: "singular once", value: x, n: 1, wantLen: 1},
		{name: "singular thrice", value: x, n: 3, wantLen: 3},
		{name: "negative clamps to empty", value: x, n: -2, wantLen: 0},
		{name: "unaligned pair thrice", value: pair, n: 3, wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Repeat(tt.n).Len(); got != tt.wantLen {
				t.Errorf("Repeat(%d).Len() = %d, want %d", tt.n, got, tt.wantLen)
			}
		})
	}
}

func TestRepeatOnceWrapsOriginal(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	wrapped := x.Repeat(1)
	member, ok := wrapped.At(0).(rect.Singular[int, int])
	if !ok {
		t.Fatalf("At(0) is %T, want Singular", wrapped.At(0))
	}
	if !member.Equal(x) {
		t.Errorf("At(0) = %v, want %v", member, x)
	}
}

func TestRepeatAlignedAsUnit(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	row, err := x.Then(x).Along(0)
	if err != nil {
		t.Fatalf("Along(0) error = %v", err)
	}
	// The aligned composite has two members but contributes one unit.
	if got := row.Repeat(3).Len(); got != 3 {
		t.Errorf("Repeat(3).Len() = %d, want 3", got)
	}
}

func TestElevate(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))

	lifted := x.Elevate()
	if got := lifted.Len(); got != 1 {
		t.Fatalf("Elevate().Len() = %d, want 1", got)
	}
	if member, ok := lifted.At(0).(rect.Singular[int, int]); !ok || !member.Equal(x) {
		t.Errorf("Elevate().At(0) = %v, want %v", lifted.At(0), x)
	}

	// Elevating a composite wraps the composite itself, not its members.
	pair := x.Then(x)
	outer := pair.Elevate()
	if got := outer.Len(); got != 1 {
		t.Fatalf("Elevate().Len() = %d, want 1", got)
	}
	inner, ok := outer.At(0).(rect.Unaligned[int, int])
	if !ok {
		t.Fatalf("Elevate().At(0) is %T, want Unaligned", outer.At(0))
	}
	if got := inner.Len(); got != 2 {
		t.Errorf("inner Len() = %d, want 2", got)
	}
}

func TestUnalignedSequenceAccess(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	y := rect.Of(rect.Dim(0, 2))
	seq := rect.NewUnaligned[int, int](x, y)

	if got := seq.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if member := seq.At(1).(rect.Singular[int, int]); !member.Equal(y) {
		t.Errorf("At(1) = %v, want %v", member, y)
	}

	members := seq.Members()
	members[0] = y
	if member := seq.At(0).(rect.Singular[int, int]); !member.Equal(x) {
		t.Error("mutating Members() changed the composite")
	}
}

func TestUnalignedFillIntoUndefined(t *testing.T) {
	seq := rect.NewUnaligned[int, int](rect.Of(rect.Dim(0, 1)))
	if _, err := seq.FillInto(rect.NewShape(rect.Dim(0, 5))); !errors.Is(err, rect.ErrUnalignedShape) {
		t.Errorf("FillInto() error = %v, want ErrUnalignedShape", err)
	}
}

func TestUnalignedString(t *testing.T) {
	x := rect.Of(rect.Dim(0, 1))
	if got, want := x.Then(x).String(), "(/0:1/ + /0:1/ @ ?)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
