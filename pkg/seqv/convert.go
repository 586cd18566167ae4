package seqv

import (
	"seqmark/pkg/seqmark"
)

// FromSeqMarked resolves the internal representation for the application:
// a normal value becomes a record, a tombstone becomes nil. Tombstone-only
// information (its internal sequence) is discarded; that is the point of the
// boundary.
func FromSeqMarked[M, T any](sm seqmark.SeqMarked[seqmark.MetaValue[M, T]]) *SeqV[M, T] {
	mv, ok := sm.Data()
	if !ok {
		return nil
	}
	return &SeqV[M, T]{Seq: sm.UserSeq(), Meta: mv.Meta, Data: mv.Value}
}

// ToSeqMarked wraps a record back into the internal representation, always
// normal at the record's sequence.
func (sv SeqV[M, T]) ToSeqMarked() seqmark.SeqMarked[seqmark.MetaValue[M, T]] {
	return seqmark.NewNormal(sv.Seq, seqmark.MetaValue[M, T]{Meta: sv.Meta, Value: sv.Data})
}

// FromSeqData converts an always-present value into a record. Total: there is
// no tombstone case to lose.
func FromSeqData[M, T any](sd seqmark.SeqData[seqmark.MetaValue[M, T]]) SeqV[M, T] {
	seq, mv := sd.Parts()
	return SeqV[M, T]{Seq: seq, Meta: mv.Meta, Data: mv.Value}
}

// ToSeqData converts a record into the always-present internal form.
func (sv SeqV[M, T]) ToSeqData() seqmark.SeqData[seqmark.MetaValue[M, T]] {
	return seqmark.NewSeqData(sv.Seq, seqmark.MetaValue[M, T]{Meta: sv.Meta, Value: sv.Data})
}
