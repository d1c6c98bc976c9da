package animals

import (
	"math/rand/v2"
	"sync"
)

// MaxPerSpawn caps the number of animals a spawn can carry.
const MaxPerSpawn = 10

// Source yields floats in [0, 1). *rand.Rand satisfies it; tests pin it.
type Source interface {
	Float64() float64
}

// Sampler shuffles candidates with Fisher-Yates and keeps at most MaxPerSpawn.
// Both branches consume the source identically, so a fixed source yields a
// fixed order.
type Sampler struct {
	mu  sync.Mutex
	src Source
}

// NewSampler uses src, or a randomly seeded PCG source when src is nil.
func NewSampler(src Source) *Sampler {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{src: src}
}

// Shuffle returns a shuffled copy; the input is left untouched.
func (s *Sampler) Shuffle(in []Stub) []Stub {
	out := make([]Stub, len(in))
	copy(out, in)

	// *rand.Rand is not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(out) - 1; i > 0; i-- {
		j := int(s.src.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Select returns a permutation of candidates when there are at most
// MaxPerSpawn of them, otherwise a uniform sample of exactly MaxPerSpawn.
func (s *Sampler) Select(candidates []Stub) []Stub {
	shuffled := s.Shuffle(candidates)
	if len(shuffled) > MaxPerSpawn {
		shuffled = shuffled[:MaxPerSpawn:MaxPerSpawn]
	}
	return shuffled
}
