package rect

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Length constrains dimension lengths to ordered numeric types supporting
// addition, subtraction, and comparison. Lengths are abstract magnitudes;
// nothing in the algebra requires them to be non-negative, though negative
// lengths are only meaningful as intermediate padding values.
type Length interface {
	constraints.Integer | constraints.Float
}

// Entry is a single dimension of a shape: a name paired with a length.
type Entry[D comparable, L Length] struct {
	Name D
	Size L
}

// Dim builds a shape entry. It exists so shapes can be written inline:
//
//	rect.NewShape(rect.Dim("w", 3), rect.Dim("h", 4))
func Dim[D comparable, L Length](name D, size L) Entry[D, L] {
	return Entry[D, L]{Name: name, Size: size}
}

// Shape is an immutable ordered mapping from dimension name to dimension
// length. Insertion order is preserved and observable (it provides the
// default fill order), but equality is order-independent: two shapes with
// the same name→length pairs are equal regardless of construction order.
//
// The zero value is the empty shape.
type Shape[D comparable, L Length] struct {
	names []D
	sizes map[D]L
}

// NewShape builds a shape from entries in the given order. A repeated name
// keeps its first position and takes its last length, mirroring repeated
// assignment into an ordered map.
func NewShape[D comparable, L Length](entries ...Entry[D, L]) Shape[D, L] {
	s := Shape[D, L]{sizes: make(map[D]L, len(entries))}
	for _, e := range entries {
		if _, seen := s.sizes[e.Name]; !seen {
			s.names = append(s.names, e.Name)
		}
		s.sizes[e.Name] = e.Size
	}
	return s
}

// Len returns the number of dimensions in the shape.
func (s Shape[D, L]) Len() int { return len(s.names) }

// Get returns the length of the named dimension and whether it is present.
func (s Shape[D, L]) Get(name D) (L, bool) {
	size, ok := s.sizes[name]
	return size, ok
}

// Has reports whether the named dimension is present.
func (s Shape[D, L]) Has(name D) bool {
	_, ok := s.sizes[name]
	return ok
}

// Names returns the dimension names in insertion order.
// The returned slice is a copy and can be safely modified.
func (s Shape[D, L]) Names() []D {
	out := make([]D, len(s.names))
	copy(out, s.names)
	return out
}

// Entries returns the shape's entries in insertion order.
// The returned slice is a copy and can be safely modified.
func (s Shape[D, L]) Entries() []Entry[D, L] {
	out := make([]Entry[D, L], len(s.names))
	for i, name := range s.names {
		out[i] = Entry[D, L]{Name: name, Size: s.sizes[name]}
	}
	return out
}

// Equal reports whether both shapes hold the same name→length pairs.
// Insertion order does not participate in equality.
func (s Shape[D, L]) Equal(other Shape[D, L]) bool {
	if len(s.names) != len(other.names) {
		return false
	}
	for name, size := range s.sizes {
		if got, ok := other.sizes[name]; !ok || got != size {
			return false
		}
	}
	return true
}

// Key returns an order-independent digest of the shape's entries. Shapes
// that are Equal produce identical keys, so the key can index maps and
// caches where the shape itself (which contains a map) cannot.
func (s Shape[D, L]) Key() string {
	items := make([]string, len(s.names))
	for i, name := range s.names {
		items[i] = fmt.Sprintf("%v=%v", name, s.sizes[name])
	}
	sort.Strings(items)
	sum := sha256.Sum256([]byte(strings.Join(items, "|")))
	return hex.EncodeToString(sum[:])
}

// String renders the shape as {name:length, ...} in insertion order.
// The format is for diagnostics only and is not a compatibility contract.
func (s Shape[D, L]) String() string {
	return "{" + s.contents() + "}"
}

// contents renders the entries without surrounding brackets, shared by the
// Shape and Singular string forms.
func (s Shape[D, L]) contents() string {
	var b strings.Builder
	for i, name := range s.names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", name, s.sizes[name])
	}
	return b.String()
}
