package core

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Uint32Source produces uniformly distributed 32-bit values.
// The production implementation reads from crypto/rand; tests substitute
// scripted sources for determinism.
type Uint32Source func() uint32

// Sampler draws uniform integers from a 32-bit source using rejection
// sampling, which avoids the modulo bias of a plain draw%n.
type Sampler struct {
	src Uint32Source
}

// NewSampler creates a Sampler over the given 32-bit source.
func NewSampler(src Uint32Source) *Sampler {
	return &Sampler{src: src}
}

// CryptoSampler returns a Sampler backed by the operating system's
// cryptographically secure entropy source.
func CryptoSampler() *Sampler {
	return NewSampler(cryptoUint32)
}

// IntN returns an integer uniformly distributed over [0, n). Panics if n <= 0.
//
// A draw is accepted only if it falls below the largest multiple of n that
// fits in 32 bits; draws at or above that limit are discarded and retried.
// The limit covers all but at most n-1 of the 2^32 values, so the expected
// number of retries is well under one for any realistic n.
func (s *Sampler) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("core: IntN called with non-positive n %d", n))
	}

	max := uint64(n)
	limit := (uint64(1) << 32) / max * max
	for {
		draw := uint64(s.src())
		if draw < limit {
			return int(draw % max)
		}
	}
}

// cryptoUint32 reads 4 bytes from crypto/rand. An entropy source failure is
// not recoverable mid-game, so it panics rather than returning an error.
func cryptoUint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("core: entropy source failed: %v", err))
	}
	return binary.BigEndian.Uint32(buf[:])
}
