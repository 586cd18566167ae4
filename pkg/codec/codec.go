// Package codec is the length-prefixed binary encoding of the internal value
// shapes. The layout is deliberately minimal so sorted runs and logs can
// store versions compactly:
//
//	SeqMarked  uvarint(seq) | tag | [uvarint(len) payload]   (payload only when normal)
//	SeqData    uvarint(seq) | uvarint(len) payload
//	OrderKey   uvarint(seq) | tag
//
// A tombstone consumes exactly its tag byte and carries no payload bytes.
package codec

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"seqmark/pkg/seqmark"
)

const (
	tagNormal    = 0x00
	tagTombstone = 0x01
)

// ErrInvalidEncoding reports a truncated or malformed buffer.
var ErrInvalidEncoding = errors.New("codec: invalid encoding")

// AppendSeqMarked appends the encoding of sm to dst and returns the extended
// buffer.
func AppendSeqMarked[D ~[]byte | ~string](dst []byte, sm seqmark.SeqMarked[D]) []byte {
	seq, m := sm.Parts()
	dst = binary.AppendUvarint(dst, seq)
	d, ok := m.Data()
	if !ok {
		return append(dst, tagTombstone)
	}
	dst = append(dst, tagNormal)
	dst = binary.AppendUvarint(dst, uint64(len(d)))
	return append(dst, []byte(d)...)
}

// DecodeSeqMarked decodes one value from the front of b, returning the value
// and the number of bytes consumed. The payload is copied out of b.
func DecodeSeqMarked[D ~[]byte | ~string](b []byte) (seqmark.SeqMarked[D], int, error) {
	var zero seqmark.SeqMarked[D]

	seq, off, err := decodeUvarint(b, "seq")
	if err != nil {
		return zero, 0, err
	}
	if off >= len(b) {
		return zero, 0, errors.Wrap(ErrInvalidEncoding, "missing marker tag")
	}
	tag := b[off]
	off++

	switch tag {
	case tagTombstone:
		return seqmark.NewTombstone[D](seq), off, nil
	case tagNormal:
		d, n, err := decodePayload(b[off:])
		if err != nil {
			return zero, 0, err
		}
		return seqmark.NewNormal(seq, D(d)), off + n, nil
	default:
		return zero, 0, errors.Wrapf(ErrInvalidEncoding, "unknown marker tag 0x%02x", tag)
	}
}

// AppendSeqData appends the encoding of sd to dst and returns the extended
// buffer.
func AppendSeqData[D ~[]byte | ~string](dst []byte, sd seqmark.SeqData[D]) []byte {
	seq, d := sd.Parts()
	dst = binary.AppendUvarint(dst, seq)
	dst = binary.AppendUvarint(dst, uint64(len(d)))
	return append(dst, []byte(d)...)
}

// DecodeSeqData decodes one value from the front of b, returning the value
// and the number of bytes consumed. The payload is copied out of b.
func DecodeSeqData[D ~[]byte | ~string](b []byte) (seqmark.SeqData[D], int, error) {
	var zero seqmark.SeqData[D]

	seq, off, err := decodeUvarint(b, "seq")
	if err != nil {
		return zero, 0, err
	}
	d, n, err := decodePayload(b[off:])
	if err != nil {
		return zero, 0, err
	}
	return seqmark.NewSeqData(seq, D(d)), off + n, nil
}

// AppendOrderKey appends the encoding of k to dst and returns the extended
// buffer.
func AppendOrderKey(dst []byte, k seqmark.OrderKey) []byte {
	seq, m := k.Parts()
	dst = binary.AppendUvarint(dst, seq)
	if m.IsTombstone() {
		return append(dst, tagTombstone)
	}
	return append(dst, tagNormal)
}

// DecodeOrderKey decodes one order key from the front of b, returning the
// key and the number of bytes consumed.
func DecodeOrderKey(b []byte) (seqmark.OrderKey, int, error) {
	var zero seqmark.OrderKey

	seq, off, err := decodeUvarint(b, "seq")
	if err != nil {
		return zero, 0, err
	}
	if off >= len(b) {
		return zero, 0, errors.Wrap(ErrInvalidEncoding, "missing marker tag")
	}
	tag := b[off]
	off++

	switch tag {
	case tagTombstone:
		return seqmark.NewTombstone[struct{}](seq), off, nil
	case tagNormal:
		return seqmark.NewNormal(seq, struct{}{}), off, nil
	default:
		return zero, 0, errors.Wrapf(ErrInvalidEncoding, "unknown marker tag 0x%02x", tag)
	}
}

func decodeUvarint(b []byte, field string) (uint64, int, error) {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidEncoding, "short buffer reading %s", field)
	}
	return v, n, nil
}

// decodePayload reads a length-prefixed payload, copying it so the result
// does not alias the input buffer.
func decodePayload(b []byte) ([]byte, int, error) {
	l, n, err := decodeUvarint(b, "payload length")
	if err != nil {
		return nil, 0, err
	}
	if l > uint64(len(b)-n) {
		return nil, 0, errors.Wrapf(ErrInvalidEncoding, "payload length %d exceeds remaining %d bytes", l, len(b)-n)
	}
	d := make([]byte, l)
	copy(d, b[n:n+int(l)])
	return d, n + int(l), nil
}
