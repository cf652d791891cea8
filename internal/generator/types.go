package generator

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform integers in [0,n).
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	IntN(n int) int
}

// Record is one generated process.
type Record struct {
	ID       int
	Arrival  int
	Runtime  int
	Priority int
	MemSize  int
}

// Summary describes a completed write.
type Summary struct {
	Records int
	Bytes   int64
}

// NewSource returns a PCG-backed source. The same seed always yields the same stream.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TimeSeed derives a seed from the current time.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
