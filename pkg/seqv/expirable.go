package seqv

import (
	"math"

	"github.com/samber/mo"
)

// NoExpiry is the expiration of a value that never expires.
const NoExpiry uint64 = math.MaxUint64

// Expirable is the capability contract metadata types implement to take part
// in TTL expiry. Only the expiration instant is read here; the metadata's
// other fields are its own business.
type Expirable interface {
	// ExpiresAtMsOpt returns the absolute expiration in epoch milliseconds,
	// or mo.None when no expiration is set.
	ExpiresAtMsOpt() mo.Option[uint64]
}

// ExpiryMs returns e's expiration, or NoExpiry when none is set.
func ExpiryMs(e Expirable) uint64 {
	if ms, ok := e.ExpiresAtMsOpt().Get(); ok {
		return ms
	}
	return NoExpiry
}

// MetaExpiresAtMsOpt reads the expiration through optional metadata. Absent
// metadata never expires.
func MetaExpiresAtMsOpt[M Expirable](meta mo.Option[M]) mo.Option[uint64] {
	m, ok := meta.Get()
	if !ok {
		return mo.None[uint64]()
	}
	return m.ExpiresAtMsOpt()
}
