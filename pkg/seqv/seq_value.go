package seqv

import (
	"github.com/samber/mo"

	"seqmark/pkg/seqmark"
)

// SeqValue reads any representation of a stored record uniformly: the
// user-visible sequence, the payload if one is present, and the metadata.
// Each implementation answers independently; there is no shared base.
type SeqValue[M, V any] interface {
	// UserSeq is the application-visible sequence: zero when no record or a
	// tombstone stands behind the value.
	UserSeq() uint64
	Value() mo.Option[V]
	Metadata() mo.Option[M]
}

var (
	_ SeqValue[uint64, string] = (*SeqV[uint64, string])(nil)
	_ SeqValue[uint64, string] = SeqMarkedValue[uint64, string]{}
)

// UserSeq implements SeqValue. A nil receiver is the "no record" case and
// reports sequence zero.
func (sv *SeqV[M, T]) UserSeq() uint64 {
	if sv == nil {
		return 0
	}
	return sv.Seq
}

// Value implements SeqValue; mo.None when the receiver is nil.
func (sv *SeqV[M, T]) Value() mo.Option[T] {
	if sv == nil {
		return mo.None[T]()
	}
	return mo.Some(sv.Data)
}

// Metadata implements SeqValue; mo.None when the receiver is nil.
func (sv *SeqV[M, T]) Metadata() mo.Option[M] {
	if sv == nil {
		return mo.None[M]()
	}
	return sv.Meta
}

// SeqMarkedValue adapts the internal tombstone-aware representation to the
// SeqValue interface. The promoted UserSeq already reports zero for
// tombstones, and a tombstone yields no value and no metadata, so a deleted
// key reads exactly like an absent one.
type SeqMarkedValue[M, T any] struct {
	seqmark.SeqMarked[seqmark.MetaValue[M, T]]
}

// AsSeqValue wraps an internal value for uniform reading.
func AsSeqValue[M, T any](sm seqmark.SeqMarked[seqmark.MetaValue[M, T]]) SeqMarkedValue[M, T] {
	return SeqMarkedValue[M, T]{sm}
}

// Value implements SeqValue.
func (v SeqMarkedValue[M, T]) Value() mo.Option[T] {
	mv, ok := v.SeqMarked.Data()
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(mv.Value)
}

// Metadata implements SeqValue.
func (v SeqMarkedValue[M, T]) Metadata() mo.Option[M] {
	mv, ok := v.SeqMarked.Data()
	if !ok {
		return mo.None[M]()
	}
	return mv.Meta
}

// Unpack splits a value into its user sequence and optional payload.
func Unpack[M, V any](sv SeqValue[M, V]) (uint64, mo.Option[V]) {
	return sv.UserSeq(), sv.Value()
}

// ExpiresAtMsOpt returns the expiration carried by the value's metadata.
// Requiring M to be Expirable makes expiry a compile-time capability: values
// whose metadata type has no expiration contract cannot reach these
// functions at all.
func ExpiresAtMsOpt[M Expirable, V any](sv SeqValue[M, V]) mo.Option[uint64] {
	return MetaExpiresAtMsOpt(sv.Metadata())
}

// ExpiresAtMs returns the expiration, or NoExpiry when the value has no
// metadata or the metadata sets none.
func ExpiresAtMs[M Expirable, V any](sv SeqValue[M, V]) uint64 {
	if ms, ok := ExpiresAtMsOpt(sv).Get(); ok {
		return ms
	}
	return NoExpiry
}

// IsExpired reports whether the value is expired at nowMs. The boundary is
// exclusive: a value expiring exactly at nowMs is not yet expired.
func IsExpired[M Expirable, V any](sv SeqValue[M, V], nowMs uint64) bool {
	return ExpiresAtMs(sv) < nowMs
}
