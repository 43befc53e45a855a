package game

import "time"

// Rand is the uniform random source used by the generators.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
}

// Clock provides wall-clock time. Injectable so tests can pin elapsed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// intn draws a uniform int in [0, n) from r.
func intn(r Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n { // Float64 is in [0,1) but guard float rounding
		i = n - 1
	}
	return i
}

// shuffle permutes s in place using a Fisher-Yates walk over r.
func shuffle(r Rand, s []Color) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(r, i+1)
		s[i], s[j] = s[j], s[i]
	}
}
