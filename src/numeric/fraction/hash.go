package fraction

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// Hash returns a hash of the numerator, denominator and category. Equal
// values hash equally because every value is canonical.
func (x Fraction) Hash() uint64 {
	var b [9]byte
	binary.LittleEndian.PutUint32(b[:4], uint32(x.num))
	binary.LittleEndian.PutUint32(b[4:8], uint32(x.Den()))
	b[8] = byte(x.cat)
	return xxhash.Sum64(b[:])
}
