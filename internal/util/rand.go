// Package util provides shared helper utilities.
//
//revive:disable:var-naming // Package name follows project convention.
package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewRand returns a generator seeded with seed. A zero seed is replaced by
// one drawn from system entropy; the effective seed is returned so a run can
// be replayed.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = entropySeed()
	}
	return rand.New(rand.NewSource(seed)), seed
}

func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
	if seed == 0 {
		seed = 1
	}
	return seed
}

// CoinFlip returns a fair boolean draw.
func CoinFlip(r *rand.Rand) bool {
	return r.Intn(2) == 1
}
