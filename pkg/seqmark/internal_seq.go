package seqmark

import (
	"fmt"
	"math"
	"sync/atomic"
)

// InternalSeq is the raw sequence numbering that counts tombstones. It is a
// distinct type from the application-visible uint64 so the two numberings
// cannot be mixed by accident: only InternalSeq is valid for breaking ties
// between deletes during merge or compaction.
type InternalSeq uint64

const (
	// SeqZero is reserved: together with a tombstone it forms the absent
	// sentinel (NewNotFound) and is never assigned to a write.
	SeqZero InternalSeq = 0

	// SeqStart is the first sequence number assigned to a real write.
	SeqStart InternalSeq = 1

	// SeqMax is the greatest representable sequence number.
	SeqMax InternalSeq = math.MaxUint64
)

func (s InternalSeq) String() string {
	return fmt.Sprintf("ISeq(%d)", uint64(s))
}

// AtomicInternalSeq mints sequence numbers for an engine. The counter starts
// at SeqZero; the first Next returns SeqStart, so no write ever observes the
// reserved zero.
type AtomicInternalSeq struct {
	atomic.Uint64
}

// NewAtomicInternalSeq returns a counter resuming from init, typically the
// highest sequence recovered from a log.
func NewAtomicInternalSeq(init InternalSeq) *AtomicInternalSeq {
	var a AtomicInternalSeq
	a.Set(init)
	return &a
}

func (a *AtomicInternalSeq) Val() InternalSeq {
	return InternalSeq(a.Load())
}

// Next allocates and returns the next sequence number.
func (a *AtomicInternalSeq) Next() InternalSeq {
	return InternalSeq(a.Add(1))
}

func (a *AtomicInternalSeq) Set(s InternalSeq) {
	a.Store(uint64(s))
}
