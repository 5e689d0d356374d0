// Package seedrand provides the deterministic pseudo-random source used
// throughout pack generation. The same seed always produces the same
// sequence, so generated packs are byte-identical across runs.
package seedrand

import "strconv"

// Source is a mulberry32 generator: a 32-bit state advanced by a fixed
// odd increment and mixed with xorshift plus two multiply-xor rounds.
type Source struct {
	state uint32
}

// New creates a Source from an integer seed.
func New(seed int) *Source {
	return &Source{state: uint32(seed)}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state += 0x6d2b79f5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296
}

// Intn returns a deterministic value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return int(s.Float64() * float64(n))
}

// FromString derives an integer seed from a string with a 31-multiplier
// rolling hash wrapped to 32-bit signed range. The result is the
// absolute value, floored at 1 so a zero seed never degenerates the
// generator.
func FromString(value string) int {
	var hash int32
	for _, r := range value {
		hash = hash*31 + int32(r)
	}
	// Widen before negating so the minimum 32-bit value keeps its
	// magnitude.
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	if h == 0 {
		return 1
	}
	return int(h)
}

// HashBase36 renders the rolling hash of value as a base-36 string.
// Used for content-addressed identifiers.
func HashBase36(value string) string {
	return strconv.FormatInt(int64(FromString(value)), 36)
}

// Shuffle returns a seeded Fisher-Yates permutation of items. The input
// slice is not modified.
func Shuffle(items []string, seed int) []string {
	out := make([]string, len(items))
	copy(out, items)
	src := New(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
