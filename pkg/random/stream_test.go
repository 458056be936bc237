package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(150), b.IntN(150))
		assert.Equal(t, a.Poisson(2), b.Poisson(2))
	}
}

func TestStream_DifferentSeeds(t *testing.T) {
	a := New(1)
	b := New(2)

	equal := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			equal++
		}
	}
	assert.Less(t, equal, 5)
}

func TestStream_Ranges(t *testing.T) {
	s := New(7)

	for i := 0; i < 10000; i++ {
		u := s.Uniform(1.1, 1.3)
		assert.GreaterOrEqual(t, u, 1.1)
		assert.Less(t, u, 1.3)

		r := s.IntRange(20, 101)
		assert.GreaterOrEqual(t, r, 20)
		assert.LessOrEqual(t, r, 100)

		assert.GreaterOrEqual(t, s.Poisson(1.5), 0)
	}
}

func TestStream_PoissonMean(t *testing.T) {
	s := New(42)

	const samples = 50000
	for _, lambda := range []float64{1.5, 2, 3} {
		total := 0
		for i := 0; i < samples; i++ {
			total += s.Poisson(lambda)
		}
		assert.InDelta(t, lambda, float64(total)/samples, 0.05, "lambda %.1f", lambda)
	}

	assert.Equal(t, 0, s.Poisson(0))
}

func TestStream_PoissonLargeMean(t *testing.T) {
	s := New(42)

	const samples = 5000
	for _, lambda := range []float64{50, 800, 2000} {
		total := 0
		for i := 0; i < samples; i++ {
			k := s.Poisson(lambda)
			assert.GreaterOrEqual(t, k, 0)
			total += k
		}
		assert.InDelta(t, lambda, float64(total)/samples, lambda*0.02, "lambda %.0f", lambda)
	}
}

func TestStream_NormalMean(t *testing.T) {
	s := New(42)

	const samples = 50000
	total := 0.0
	for i := 0; i < samples; i++ {
		total += s.Normal(14, 4)
	}
	assert.InDelta(t, 14, total/samples, 0.1)
}
