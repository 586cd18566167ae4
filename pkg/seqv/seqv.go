// Package seqv is the application-facing side of the versioned value shapes:
// SeqV carries a sequence, optional metadata and a payload with no tombstone
// state, and the SeqValue interface reads any representation uniformly.
// Absence of a record is a nil *SeqV, never a tombstone.
package seqv

import (
	"github.com/samber/mo"
)

// SeqV is a stored record as an application sees it: version, optional
// metadata, payload. Engines build it from the internal representation after
// tombstones are resolved to absence.
type SeqV[M, T any] struct {
	Seq  uint64       `json:"seq"`
	Meta mo.Option[M] `json:"meta"`
	Data T            `json:"data"`
}

// New returns a record with no metadata.
func New[M, T any](seq uint64, data T) SeqV[M, T] {
	return SeqV[M, T]{Seq: seq, Meta: mo.None[M](), Data: data}
}

// NewWithMeta returns a record with the given optional metadata.
func NewWithMeta[M, T any](seq uint64, meta mo.Option[M], data T) SeqV[M, T] {
	return SeqV[M, T]{Seq: seq, Meta: meta, Data: data}
}

// WithSeq returns a copy with the sequence replaced.
func (sv SeqV[M, T]) WithSeq(seq uint64) SeqV[M, T] {
	sv.Seq = seq
	return sv
}

// WithMeta returns a copy with the metadata replaced.
func (sv SeqV[M, T]) WithMeta(meta mo.Option[M]) SeqV[M, T] {
	sv.Meta = meta
	return sv
}

// WithValue returns a copy with the payload replaced.
func (sv SeqV[M, T]) WithValue(data T) SeqV[M, T] {
	sv.Data = data
	return sv
}

// Map transforms the payload; sequence and metadata pass through unchanged.
func Map[M, T, U any](sv SeqV[M, T], f func(T) U) SeqV[M, U] {
	return SeqV[M, U]{Seq: sv.Seq, Meta: sv.Meta, Data: f(sv.Data)}
}

// TryMap is Map with a fallible transform. On error the zero SeqV is
// returned together with f's error, unwrapped; the input counts as consumed.
func TryMap[M, T, U any](sv SeqV[M, T], f func(T) (U, error)) (SeqV[M, U], error) {
	u, err := f(sv.Data)
	if err != nil {
		return SeqV[M, U]{}, err
	}
	return SeqV[M, U]{Seq: sv.Seq, Meta: sv.Meta, Data: u}, nil
}
