package hopscotch

import (
	"github.com/cespare/xxhash/v2"
)

// HashFunc computes 32-bit digest of the key.
// It must be deterministic. It is not required to be uniform, though poor
// distribution leads to more displacements and longer overflow chains.
type HashFunc func(key string) uint32

// Sum32 is the default HashFunc. It folds 64-bit xxhash digest of the key
// into 32 bits.
func Sum32(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h) ^ uint32(h>>32)
}
