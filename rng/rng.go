// Package rng provides the randomness source handed to the tray.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a deterministic generator for the given seed.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Scripted returns the queued values in order, each taken modulo n. It panics
// once the queue is empty.
type Scripted struct {
	Values []int
}

func (s *Scripted) Intn(n int) int {
	if len(s.Values) == 0 {
		panic("rng: scripted generator exhausted")
	}
	v := s.Values[0]
	s.Values = s.Values[1:]
	return v % n
}
