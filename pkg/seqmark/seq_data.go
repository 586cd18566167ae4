package seqmark

import (
	"cmp"
	"fmt"
)

// SeqData is a sequence number paired with a payload that is always present.
// It is the shape for paths where deletions are not representable, such as a
// value already resolved out of a merge.
type SeqData[D any] struct {
	seq  uint64
	data D
}

// NewSeqData pairs a sequence number with a payload.
func NewSeqData[D any](seq uint64, d D) SeqData[D] {
	return SeqData[D]{seq: seq, data: d}
}

// InternalSeq returns the raw sequence number.
func (sd SeqData[D]) InternalSeq() InternalSeq {
	return InternalSeq(sd.seq)
}

// UserSeq returns the sequence number as applications see it. With no
// tombstone state it always equals the raw sequence.
func (sd SeqData[D]) UserSeq() uint64 {
	return sd.seq
}

// OrderKey projects to a normal order key at the same sequence.
func (sd SeqData[D]) OrderKey() OrderKey {
	return NewNormal(sd.seq, struct{}{})
}

func (sd SeqData[D]) Data() D {
	return sd.data
}

// Parts decomposes sd into its sequence and payload.
func (sd SeqData[D]) Parts() (uint64, D) {
	return sd.seq, sd.data
}

func (sd SeqData[D]) String() string {
	return fmt.Sprintf("{seq=%d, %v}", sd.seq, sd.data)
}

// CompareSeqData orders by sequence first, then payload.
func CompareSeqData[D cmp.Ordered](a, b SeqData[D]) int {
	return CompareSeqDataFunc(a, b, cmp.Compare[D])
}

// CompareSeqDataFunc is CompareSeqData for payloads without a built-in order.
func CompareSeqDataFunc[D any](a, b SeqData[D], cmpData func(D, D) int) int {
	if c := cmp.Compare(a.seq, b.seq); c != 0 {
		return c
	}
	return cmpData(a.data, b.data)
}

// MaxSeqData returns the value with the greater order key; b wins ties.
func MaxSeqData[D any](a, b SeqData[D]) SeqData[D] {
	if a.OrderKey().CompareOrderKey(b.OrderKey()) > 0 {
		return a
	}
	return b
}

// MaxSeqDataRef is MaxSeqData over pointers, avoiding a copy of the payload.
func MaxSeqDataRef[D any](a, b *SeqData[D]) *SeqData[D] {
	if a.OrderKey().CompareOrderKey(b.OrderKey()) > 0 {
		return a
	}
	return b
}

// MapSeqData transforms the payload, leaving the sequence untouched.
func MapSeqData[D, U any](sd SeqData[D], f func(D) U) SeqData[U] {
	return SeqData[U]{seq: sd.seq, data: f(sd.data)}
}

// TryMapSeqData is MapSeqData with a fallible transform. On error the zero
// SeqData is returned together with f's error, unwrapped.
func TryMapSeqData[D, U any](sd SeqData[D], f func(D) (U, error)) (SeqData[U], error) {
	u, err := f(sd.data)
	if err != nil {
		return SeqData[U]{}, err
	}
	return SeqData[U]{seq: sd.seq, data: u}, nil
}
