package mastermind

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
)

// Source yields uniformly distributed ints in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG generator seeded from crypto/rand.
func NewRandomSource() Source {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(fmt.Sprintf("mastermind: read seed: %v", err))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// HMACSource is a deterministic byte stream: HMAC-SHA256(seed, "nonce:round"),
// 32 bytes per round. Every draw consumes 4 bytes.
type HMACSource struct {
	seed  []byte
	nonce uint64
	round uint64
	pos   int
	buf   [32]byte
}

func NewHMACSource(seed string, nonce uint64) *HMACSource {
	s := &HMACSource{seed: []byte(seed), nonce: nonce}
	s.fill()
	return s
}

func (s *HMACSource) fill() {
	h := hmac.New(sha256.New, s.seed)
	fmt.Fprintf(h, "%d:%d", s.nonce, s.round)
	copy(s.buf[:], h.Sum(nil))
	s.pos = 0
}

func (s *HMACSource) next() byte {
	if s.pos >= len(s.buf) {
		s.round++
		s.fill()
	}
	b := s.buf[s.pos]
	s.pos++
	return b
}

// float returns a value in [0, 1) built from the next 4 bytes.
func (s *HMACSource) float() float64 {
	var f, div float64 = 0, 1
	for i := 0; i < 4; i++ {
		div *= 256
		f += float64(s.next()) / div
	}
	return f
}

func (s *HMACSource) IntN(n int) int {
	if n <= 0 {
		panic("mastermind: IntN with non-positive n")
	}
	v := int(s.float() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// SeededSource returns a factory of HMAC sources sharing seed. Each call
// advances the nonce, so consecutive games get different but reproducible
// secrets.
func SeededSource(seed string) func() Source {
	var nonce atomic.Uint64
	return func() Source {
		return NewHMACSource(seed, nonce.Add(1)-1)
	}
}
