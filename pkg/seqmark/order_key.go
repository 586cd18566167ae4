package seqmark

import "math"

// OrderKey is the payload-free projection of a SeqMarked: sequence plus
// presence, nothing else. Two values merge-compare equal exactly when their
// order keys are equal, so engines can sort and pick winners without
// materializing payloads.
type OrderKey = SeqMarked[struct{}]

// ZeroOrderKey returns the least order key: a normal value at sequence zero.
// It compares below every key an engine can produce.
func ZeroOrderKey() OrderKey {
	return NewNormal(0, struct{}{})
}

// MaxOrderKey returns the greatest order key: a tombstone at the maximum
// sequence.
func MaxOrderKey() OrderKey {
	return NewTombstone[struct{}](math.MaxUint64)
}
