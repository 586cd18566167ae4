package seqmark

// Shorthand constructors for tests.

func norm[D any](seq uint64, d D) SeqMarked[D] {
	return NewNormal(seq, d)
}

func ts[D any](seq uint64) SeqMarked[D] {
	return NewTombstone[D](seq)
}
