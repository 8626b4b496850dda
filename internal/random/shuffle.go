package random

// Shuffle permutes s in place and returns it.
//
// For i from len(s)-1 down to 1 it swaps s[i] with s[j], where j is the low
// 32 bits of a draw reduced modulo i. The partner range is [0, i), not the
// textbook [0, i], so an element never stays at the position it is visited
// from. Slices of length 0 or 1 are left untouched and consume no draws.
func Shuffle[T any](g *Generator, s []T) []T {
	for i := len(s) - 1; i >= 1; i-- {
		j := int((g.Uint64() & 0xffffffff) % uint64(i))
		s[j], s[i] = s[i], s[j]
	}
	return s
}
