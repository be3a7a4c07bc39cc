// Package refresh implements the deterministic seeded variation applied to
// repeated fetches of the same logical query: a seeded shuffle of result
// lists and a seed-keyed perturbation of the outgoing query. Seeds come
// from clients as plain integers and exist only to vary result framing;
// they are not a source of secure randomness.
package refresh

import "math"

// rng returns a deterministic generator in [0, 1) keyed by seed. Each draw
// takes sin of the current seed, scales it, keeps the fractional part, and
// then advances the seed.
func rng(seed int) func() float64 {
	s := float64(seed)
	return func() float64 {
		x := math.Sin(s) * 10000
		s++
		return x - math.Floor(x)
	}
}

// Shuffle returns a seeded Fisher-Yates permutation of items. The same
// seed always yields the same order. The input slice is never mutated;
// empty and single-element inputs come back as-is.
func Shuffle[T any](items []T, seed int) []T {
	result := make([]T, len(items))
	copy(result, items)

	random := rng(seed)
	for i := len(result); i > 0; i-- {
		j := int(math.Floor(random() * float64(i)))
		result[i-1], result[j] = result[j], result[i-1]
	}

	return result
}
