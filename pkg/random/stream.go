// Package random encapsula o gerador pseudoaleatório semeado usado na geração do dataset.
//
// Toda amostragem passa por um único Stream. A ordem das chamadas faz parte do contrato:
// a mesma semente com a mesma sequência de chamadas produz exatamente os mesmos valores.
package random

import (
	"math"
	"math/rand/v2"
)

type Stream struct {
	rng *rand.Rand
}

// New cria um stream determinístico a partir da semente
func New(seed uint64) *Stream {
	return &Stream{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 retorna um valor em [0, 1)
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// Uniform retorna um valor em [low, high)
func (s *Stream) Uniform(low, high float64) float64 {
	return low + (high-low)*s.rng.Float64()
}

// IntN retorna um inteiro em [0, n). Panics se n <= 0.
func (s *Stream) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntRange retorna um inteiro em [low, high)
func (s *Stream) IntRange(low, high int) int {
	return low + s.rng.IntN(high-low)
}

// Normal retorna uma amostra da normal com média e desvio padrão informados
func (s *Stream) Normal(mean, stddev float64) float64 {
	return mean + stddev*s.rng.NormFloat64()
}

// Chance retorna true com probabilidade p
func (s *Stream) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Acima desta média o método de Knuth perde precisão (exp(-lambda) tende a zero)
const poissonNormalThreshold = 30

// Poisson usa o método de Knuth para médias pequenas, como as das quantidades padrão,
// e a aproximação normal N(lambda, lambda) para médias acima de 30.
func (s *Stream) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	if lambda > poissonNormalThreshold {
		k := math.Round(lambda + math.Sqrt(lambda)*s.rng.NormFloat64())
		return int(math.Max(k, 0))
	}

	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= s.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
