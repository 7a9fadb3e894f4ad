package oracle

import (
	"math/big"
	"testing"
)

func TestDecodeWordLSBFirst(t *testing.T) {
	word := DecodeWord(6, 4)
	want := Word{false, true, true, false}
	for i := range want {
		if word[i] != want[i] {
			t.Fatalf("bit %d: got %v want %v", i, word[i], want[i])
		}
	}
	big6 := DecodeWordBig(big.NewInt(6), 4)
	for i := range want {
		if big6[i] != want[i] {
			t.Fatalf("big bit %d: got %v want %v", i, big6[i], want[i])
		}
	}
}

func TestDecodeWordBigHighBits(t *testing.T) {
	idx := new(big.Int).Lsh(big.NewInt(1), 70)
	word := DecodeWordBig(idx, 72)
	for i, bit := range word {
		if bit != (i == 70) {
			t.Fatalf("bit %d=%v", i, bit)
		}
	}
}

func TestEvaluateSingleDoorScenario(t *testing.T) {
	def := Definition{Length: 2, Doors: []bool{true, false}}
	cases := []struct {
		word Word
		want bool
	}{
		{Word{false, false}, false},
		{Word{true, false}, true},
		{Word{false, true}, false},
		{Word{true, true}, true},
	}
	for _, tc := range cases {
		if got := Evaluate(def, tc.word); got != tc.want {
			t.Fatalf("evaluate(%v)=%v want %v", tc.word, got, tc.want)
		}
	}
}

func TestEvaluateConstantIsZero(t *testing.T) {
	def := Definition{Length: 3, Doors: make([]bool, 3), Constant: true}
	for i := uint64(0); i < 8; i++ {
		if Evaluate(def, DecodeWord(i, 3)) {
			t.Fatalf("constant oracle returned true for %d", i)
		}
	}
}

func TestEvaluateSingleDoorProjects(t *testing.T) {
	const length = 5
	for k := 0; k < length; k++ {
		doors := make([]bool, length)
		doors[k] = true
		def := Definition{Length: length, Doors: doors}
		for i := uint64(0); i < 1<<length; i++ {
			word := DecodeWord(i, length)
			if Evaluate(def, word) != word[k] {
				t.Fatalf("door %d word %v: evaluate != word[k]", k, word)
			}
		}
	}
}

func TestEvaluateIsLinear(t *testing.T) {
	def := Definition{Length: 4, Doors: []bool{true, false, true, true}}
	for a := uint64(0); a < 16; a++ {
		for b := uint64(0); b < 16; b++ {
			w1, w2 := DecodeWord(a, 4), DecodeWord(b, 4)
			lhs := Evaluate(def, w1.Xor(w2))
			rhs := Evaluate(def, w1) != Evaluate(def, w2)
			if lhs != rhs {
				t.Fatalf("linearity broken for %d ^ %d", a, b)
			}
		}
	}
}

func TestEvaluateIgnoresInactivePositions(t *testing.T) {
	def := Definition{Length: 3, Doors: []bool{true, false, false}}
	base := Word{true, false, false}
	for i := uint64(0); i < 4; i++ {
		word := Word{true, i&1 == 1, i&2 == 2}
		if Evaluate(def, word) != Evaluate(def, base) {
			t.Fatalf("inactive positions changed the result for %v", word)
		}
	}
}

func TestDomainAndMajorityCounts(t *testing.T) {
	if got := DomainSize(4).Int64(); got != 16 {
		t.Fatalf("domain=%d", got)
	}
	if got := MajoritySamples(4).Int64(); got != 9 {
		t.Fatalf("majority=%d", got)
	}
	if got := MajoritySamples(1).Int64(); got != 2 {
		t.Fatalf("majority(1)=%d", got)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 100)
	if DomainSize(100).Cmp(want) != 0 {
		t.Fatalf("domain(100)=%s", DomainSize(100))
	}
}
