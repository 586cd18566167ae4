package seqmark

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/samber/mo"
)

// MetaValue is the payload shape the engine stores for a user record:
// optional metadata beside the value itself. Wrapped in a Marked or SeqMarked
// it is the full internal representation of a key's state.
type MetaValue[M, T any] struct {
	Meta  mo.Option[M] `json:"meta"`
	Value T            `json:"value"`
}

// NewMetaValue pairs a value with no metadata.
func NewMetaValue[M, T any](v T) MetaValue[M, T] {
	return MetaValue[M, T]{Meta: mo.None[M](), Value: v}
}

// NewMetaValueWith pairs a value with metadata.
func NewMetaValueWith[M, T any](meta M, v T) MetaValue[M, T] {
	return MetaValue[M, T]{Meta: mo.Some(meta), Value: v}
}

// MarkedBytesToString transcodes a byte payload to text. It fails with
// ErrInvalidData when the bytes are not valid UTF-8 and passes tombstones
// through untouched. The metadata is carried over as is.
func MarkedBytesToString[M any](m Marked[MetaValue[M, []byte]]) (Marked[MetaValue[M, string]], error) {
	return TryMapMarked(m, metaValueToString[M])
}

// MarkedStringToBytes transcodes a text payload to bytes. It is total:
// every string is valid as bytes.
func MarkedStringToBytes[M any](m Marked[MetaValue[M, string]]) Marked[MetaValue[M, []byte]] {
	return MapMarked(m, metaValueToBytes[M])
}

// BytesToString is MarkedBytesToString lifted over a sequenced value. The
// sequence and presence are preserved exactly.
func BytesToString[M any](sm SeqMarked[MetaValue[M, []byte]]) (SeqMarked[MetaValue[M, string]], error) {
	return TryMap(sm, metaValueToString[M])
}

// StringToBytes is MarkedStringToBytes lifted over a sequenced value.
func StringToBytes[M any](sm SeqMarked[MetaValue[M, string]]) SeqMarked[MetaValue[M, []byte]] {
	return Map(sm, metaValueToBytes[M])
}

func metaValueToString[M any](mv MetaValue[M, []byte]) (MetaValue[M, string], error) {
	if !utf8.Valid(mv.Value) {
		return MetaValue[M, string]{}, errors.Wrap(ErrInvalidData, "fail to convert bytes to string: invalid utf-8 sequence")
	}
	return MetaValue[M, string]{Meta: mv.Meta, Value: string(mv.Value)}, nil
}

func metaValueToBytes[M any](mv MetaValue[M, string]) MetaValue[M, []byte] {
	return MetaValue[M, []byte]{Meta: mv.Meta, Value: []byte(mv.Value)}
}
