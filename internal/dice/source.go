package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source is the randomness provider behind a Roller.
// IntN returns a uniformly distributed integer in [0, n).
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from crypto/rand. It is the default when no seed is configured.
type CryptoSource struct{}

// IntN fetches a strongly uniform random integer via crypto/rand
func (CryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return mrand.IntN(n)
	}
	return int(v.Int64())
}

// seededSource wraps a PCG generator so that a configured seed replays the same game.
type seededSource struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rnd: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Sequence replays a scripted list of faces, in order, for the next rolls.
// Once exhausted it falls back to crypto randomness.
type Sequence struct {
	faces []Face
}

// NewSequence prepares a deterministic sequence of face values (0 = bust, 1..6).
func NewSequence(values ...int) *Sequence {
	s := &Sequence{}
	s.Push(values...)
	return s
}

// Push appends more scripted values.
func (s *Sequence) Push(values ...int) {
	for _, v := range values {
		f, _ := FaceOf(v)
		s.faces = append(s.faces, f)
	}
}

// Remaining reports how many scripted faces are left.
func (s *Sequence) Remaining() int { return len(s.faces) }

// IntN maps the next scripted face onto the index space the Roller asks for:
// a 7-face roll indexes bust as 0, a 6-face roll indexes one as 0.
func (s *Sequence) IntN(n int) int {
	if len(s.faces) == 0 {
		return CryptoSource{}.IntN(n)
	}
	f := s.faces[0]
	s.faces = s.faces[1:]
	if n == Sides+1 {
		return int(f)
	}
	if f == Bust {
		return 0
	}
	return int(f) - 1
}
