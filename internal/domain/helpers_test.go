package domain

import "math/rand/v2"

// scriptedRand returns queued values in order, then falls back to zero
type scriptedRand struct {
	values []int
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func intPtr(v int) *int {
	return &v
}
