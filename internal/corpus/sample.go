// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import "math/rand/v2"

// WeightedIndex draws an index into weights with probability proportional
// to its weight. Weights need not sum to 1; non-positive weights are never
// chosen unless every weight is non-positive, in which case the last index
// is returned.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return len(weights) - 1
	}

	u := rng.Float64() * total
	var cum float64
	last := len(weights) - 1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if u < cum {
			return i
		}
		last = i
	}
	// Floating-point rounding can leave u == total.
	return last
}

// Choose draws one element of items using weights. It panics if the two
// slices differ in length.
func Choose[T any](rng *rand.Rand, items []T, weights []float64) T {
	if len(items) != len(weights) {
		panic("corpus: items and weights differ in length")
	}
	return items[WeightedIndex(rng, weights)]
}

// Uniform draws one element of items with equal probability.
func Uniform[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// Dirichlet draws a weight vector from the symmetric Dirichlet(1, ..., 1)
// distribution over k categories. With unit concentration each Gamma(1)
// component is an Exp(1) variate.
func Dirichlet(rng *rand.Rand, k int) []float64 {
	w := make([]float64, k)
	var sum float64
	for i := range w {
		w[i] = rng.ExpFloat64()
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}
