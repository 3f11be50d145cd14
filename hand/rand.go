package hand

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// RandSource is the randomness the dealer and substitutor draw from.
// *frand.RNG and *math/rand.Rand both satisfy it.
type RandSource interface {
	Intn(n int) int
}

const (
	randBufSize = 1024
	randRounds  = 12
)

// NewRandSource returns a ChaCha-based random source. An empty seed draws
// from system entropy; any other seed always yields the same sequence.
func NewRandSource(seed []byte) *frand.RNG {
	if len(seed) == 0 {
		return frand.New()
	}
	// frand wants a 32-byte key. Stretch the seed into four hashes.
	key := make([]byte, 32)
	buf := make([]byte, len(seed)+1)
	copy(buf, seed)
	for i := 0; i < 4; i++ {
		buf[len(seed)] = byte(i)
		binary.LittleEndian.PutUint64(key[i*8:], xxhash.Sum64(buf))
	}
	return frand.NewCustom(key, randBufSize, randRounds)
}
