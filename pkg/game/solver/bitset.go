package solver

// bitset is a fixed-width row of GF(2) coefficients.
type bitset []uint64

func newBitset(bits int) bitset {
	return make(bitset, (bits+63)/64)
}

func (s bitset) set(i int) {
	s[i/64] |= 1 << (uint(i) % 64)
}

func (s bitset) has(i int) bool {
	return s[i/64]&(1<<(uint(i)%64)) != 0
}

// xor adds o to s in place. Both must have the same width.
func (s bitset) xor(o bitset) {
	for i := range s {
		s[i] ^= o[i]
	}
}
