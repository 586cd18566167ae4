package seqmark

import "github.com/samber/mo"

// ToSeqData discards the tombstone case: a normal value converts to a SeqData
// at the same sequence, a tombstone converts to mo.None. The conversion is
// not invertible for tombstones; going back through ToSeqMarked only
// round-trips normal values.
func (sm SeqMarked[D]) ToSeqData() mo.Option[SeqData[D]] {
	d, ok := sm.marked.Data()
	if !ok {
		return mo.None[SeqData[D]]()
	}
	return mo.Some(SeqData[D]{seq: sm.seq, data: d})
}

// ToSeqMarked re-wraps an always-present value as a normal SeqMarked at the
// same sequence. Total.
func (sd SeqData[D]) ToSeqMarked() SeqMarked[D] {
	return NewNormal(sd.seq, sd.data)
}
