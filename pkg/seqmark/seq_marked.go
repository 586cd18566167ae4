// Package seqmark defines the versioned, tombstone-aware value shapes an
// LSM-style storage engine orders and merges: a payload marked as present or
// deleted (Marked), that payload paired with a sequence number (SeqMarked),
// the sequence-only form for values known to exist (SeqData), and the
// payload-free ordering projection (OrderKey).
//
// Values order by sequence first, then presence, so that
//
//	Compare(NewNormal(2, "x"), NewNormal(1, "z")) > 0        // higher seq wins
//	Compare(NewTombstone[string](2), NewNormal(2, "x")) > 0  // a delete shadows the write it ties with
//
// Everything here is an immutable value; operations return copies and never
// touch shared state.
package seqmark

import (
	"cmp"
	"fmt"

	"github.com/samber/mo"
)

// SeqMarked is the state of a key as of sequence number seq: either a normal
// payload or a tombstone. It is the canonical internal representation an
// engine stores in memtables and sorted runs.
type SeqMarked[D any] struct {
	seq    uint64
	marked Marked[D]
}

// NewSeqMarked pairs a sequence number with a presence state.
func NewSeqMarked[D any](seq uint64, m Marked[D]) SeqMarked[D] {
	return SeqMarked[D]{seq: seq, marked: m}
}

// NewNormal returns a present value written at seq.
func NewNormal[D any](seq uint64, d D) SeqMarked[D] {
	return SeqMarked[D]{seq: seq, marked: Normal(d)}
}

// NewTombstone returns a deletion written at seq.
func NewTombstone[D any](seq uint64) SeqMarked[D] {
	return SeqMarked[D]{seq: seq, marked: Tombstone[D]()}
}

// NewNotFound returns the absent sentinel: a tombstone at sequence zero,
// meaning the key was never written at all. Real sequences start at SeqStart,
// which keeps the sentinel distinct from any actual delete.
func NewNotFound[D any]() SeqMarked[D] {
	return NewTombstone[D](0)
}

func (sm SeqMarked[D]) IsNormal() bool {
	return sm.marked.IsNormal()
}

func (sm SeqMarked[D]) IsTombstone() bool {
	return sm.marked.IsTombstone()
}

// IsAbsent reports whether sm is the absent sentinel, a tombstone at sequence
// zero. A tombstone with a nonzero sequence is a real delete, not absence.
func (sm SeqMarked[D]) IsAbsent() bool {
	return sm.seq == 0 && sm.marked.tombstone
}

// IsNotFound is IsAbsent under the name construction sites use.
func (sm SeqMarked[D]) IsNotFound() bool {
	return sm.IsAbsent()
}

// InternalSeq returns the raw sequence number, meaningful even for
// tombstones. Merge and compaction logic breaking ties between deletes of the
// same key must use this numbering.
func (sm SeqMarked[D]) InternalSeq() InternalSeq {
	return InternalSeq(sm.seq)
}

// UserSeq returns the sequence number as applications see it: zero for any
// tombstone, since a deleted key must never appear to have a version.
func (sm SeqMarked[D]) UserSeq() uint64 {
	if sm.marked.tombstone {
		return 0
	}
	return sm.seq
}

// OrderKey strips the payload, keeping sequence and presence. The projection
// carries exactly the information a merge decision needs.
func (sm SeqMarked[D]) OrderKey() OrderKey {
	if sm.marked.tombstone {
		return NewTombstone[struct{}](sm.seq)
	}
	return NewNormal(sm.seq, struct{}{})
}

// CompareOrderKey orders sm against other by sequence, then presence, with a
// tombstone ranking above a normal value. The payload is ignored, so the
// result is total for every payload type.
func (sm SeqMarked[D]) CompareOrderKey(other SeqMarked[D]) int {
	if c := cmp.Compare(sm.seq, other.seq); c != 0 {
		return c
	}
	return cmpBool(sm.marked.tombstone, other.marked.tombstone)
}

// Data returns the payload and whether one is present.
func (sm SeqMarked[D]) Data() (D, bool) {
	return sm.marked.Data()
}

// DataOption returns the payload, or mo.None for a tombstone.
func (sm SeqMarked[D]) DataOption() mo.Option[D] {
	return sm.marked.DataOption()
}

// Parts decomposes sm into its sequence and presence state.
func (sm SeqMarked[D]) Parts() (uint64, Marked[D]) {
	return sm.seq, sm.marked
}

func (sm SeqMarked[D]) String() string {
	return fmt.Sprintf("{seq=%d, %s}", sm.seq, sm.marked)
}

// Compare is the full three-level order: sequence first, then tombstone above
// normal, then payload. Reversing the middle level would make an old write
// shadow the delete that removed it, so the levels are fixed.
func Compare[D cmp.Ordered](a, b SeqMarked[D]) int {
	return CompareFunc(a, b, cmp.Compare[D])
}

// CompareFunc is Compare for payloads without a built-in order. cmpData is
// only called when both values are normal at the same sequence.
func CompareFunc[D any](a, b SeqMarked[D], cmpData func(D, D) int) int {
	if c := a.CompareOrderKey(b); c != 0 {
		return c
	}
	if a.marked.tombstone {
		return 0
	}
	return cmpData(a.marked.data, b.marked.data)
}

// Max returns the value that wins a merge, judged by order key alone. On
// equal order keys b is returned; the operands are then indistinguishable to
// the ordering anyway.
func Max[D any](a, b SeqMarked[D]) SeqMarked[D] {
	if a.CompareOrderKey(b) > 0 {
		return a
	}
	return b
}

// MaxRef is Max over pointers, avoiding a copy of the payload.
func MaxRef[D any](a, b *SeqMarked[D]) *SeqMarked[D] {
	if a.CompareOrderKey(*b) > 0 {
		return a
	}
	return b
}

// Map transforms the payload of a normal value, leaving sequence and presence
// untouched: Map(sm, f).OrderKey() == sm.OrderKey() for every f.
func Map[D, U any](sm SeqMarked[D], f func(D) U) SeqMarked[U] {
	return SeqMarked[U]{seq: sm.seq, marked: MapMarked(sm.marked, f)}
}

// TryMap is Map with a fallible transform. On error the zero SeqMarked is
// returned together with f's error, unwrapped; the input counts as consumed
// and there is no partially converted state.
func TryMap[D, U any](sm SeqMarked[D], f func(D) (U, error)) (SeqMarked[U], error) {
	m, err := TryMapMarked(sm.marked, f)
	if err != nil {
		return SeqMarked[U]{}, err
	}
	return SeqMarked[U]{seq: sm.seq, marked: m}, nil
}
