package feed

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Shuffler permutes n items through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSeededShuffler returns a deterministic shuffler. Two shufflers built from
// the same seed produce the same sequence of permutations.
func NewSeededShuffler(seed uint64) Shuffler {
	return &lockedShuffler{r: rand.New(rand.NewPCG(seed, seed))}
}

// NewRandomShuffler returns a shuffler that draws a fresh crypto-random seed
// for every call, so no two feed reads share PRNG state.
func NewRandomShuffler() Shuffler {
	return freshShuffler{}
}

type lockedShuffler struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}

type freshShuffler struct{}

func (freshShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.New(rand.NewPCG(newSeed(), newSeed())).Shuffle(n, swap)
}

func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to the runtime source
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}
