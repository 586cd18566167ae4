package seqmark

import (
	"cmp"
	"fmt"

	"github.com/samber/mo"
)

// Marked is the presence state of a stored payload: either a normal value
// carrying data, or a tombstone recording a deletion. The payload exists only
// in the normal state; the fields are unexported so that no tombstone can ever
// carry data.
//
// In the total order a tombstone ranks above every normal value of the same
// sequence, so that a delete shadows any earlier write it ties with.
type Marked[D any] struct {
	data      D
	tombstone bool
}

// Normal returns a present value carrying d.
func Normal[D any](d D) Marked[D] {
	return Marked[D]{data: d}
}

// Tombstone returns a deletion marker with no payload.
func Tombstone[D any]() Marked[D] {
	return Marked[D]{tombstone: true}
}

func (m Marked[D]) IsNormal() bool {
	return !m.tombstone
}

func (m Marked[D]) IsTombstone() bool {
	return m.tombstone
}

// Data returns the payload and whether one is present.
func (m Marked[D]) Data() (D, bool) {
	return m.data, !m.tombstone
}

// DataOption returns the payload, or mo.None for a tombstone.
func (m Marked[D]) DataOption() mo.Option[D] {
	if m.tombstone {
		return mo.None[D]()
	}
	return mo.Some(m.data)
}

func (m Marked[D]) String() string {
	if m.tombstone {
		return "TOMBSTONE"
	}
	return fmt.Sprintf("(%v)", m.data)
}

// CompareMarked orders two marked values: tombstone above normal, normal
// values by payload.
func CompareMarked[D cmp.Ordered](a, b Marked[D]) int {
	return CompareMarkedFunc(a, b, cmp.Compare[D])
}

// CompareMarkedFunc is CompareMarked for payloads without a built-in order.
// cmpData is only called when both values are normal.
func CompareMarkedFunc[D any](a, b Marked[D], cmpData func(D, D) int) int {
	if c := cmpBool(a.tombstone, b.tombstone); c != 0 {
		return c
	}
	if a.tombstone {
		return 0
	}
	return cmpData(a.data, b.data)
}

// MapMarked transforms the payload of a normal value. A tombstone is returned
// unchanged and f is never called on it.
func MapMarked[D, U any](m Marked[D], f func(D) U) Marked[U] {
	if m.tombstone {
		return Tombstone[U]()
	}
	return Normal(f(m.data))
}

// TryMapMarked is MapMarked with a fallible transform. On error the zero
// Marked is returned together with f's error, unwrapped; there is no
// partially converted state.
func TryMapMarked[D, U any](m Marked[D], f func(D) (U, error)) (Marked[U], error) {
	if m.tombstone {
		return Tombstone[U](), nil
	}
	u, err := f(m.data)
	if err != nil {
		return Marked[U]{}, err
	}
	return Normal(u), nil
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
