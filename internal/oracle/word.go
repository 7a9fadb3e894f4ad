package oracle

import "math/big"

// Word is one point of the oracle's domain, position 0 first.
type Word []bool

// DecodeWord expands the low length bits of i, least-significant bit first.
// Bits past 63 are always zero.
func DecodeWord(i uint64, length int) Word {
	word := make(Word, length)
	for bit := 0; bit < length && bit < 64; bit++ {
		word[bit] = (i>>uint(bit))&1 == 1
	}
	return word
}

// DecodeWordBig is DecodeWord for indexes that do not fit in 64 bits.
func DecodeWordBig(i *big.Int, length int) Word {
	word := make(Word, length)
	for bit := 0; bit < length; bit++ {
		word[bit] = i.Bit(bit) == 1
	}
	return word
}

// Xor returns the position-wise XOR of w and other. Both must have the same length.
func (w Word) Xor(other Word) Word {
	out := make(Word, len(w))
	for i := range w {
		out[i] = w[i] != other[i]
	}
	return out
}

// DomainSize returns 2^length.
func DomainSize(length int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(length))
}

// MajoritySamples returns 2^(length-1)+1, the sample count of the majority policy.
func MajoritySamples(length int) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), uint(length-1))
	return n.Add(n, big.NewInt(1))
}
