package util

import "testing"

func TestNewRandKeepsExplicitSeed(t *testing.T) {
	r1, seed := NewRand(42)
	if seed != 42 {
		t.Fatalf("seed=%d", seed)
	}
	r2, _ := NewRand(42)
	for i := 0; i < 16; i++ {
		if a, b := r1.Int63(), r2.Int63(); a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}

func TestNewRandZeroSeedUsesEntropy(t *testing.T) {
	_, seed := NewRand(0)
	if seed <= 0 {
		t.Fatalf("expected positive entropy seed, got %d", seed)
	}
}

func TestCoinFlipSeesBothSides(t *testing.T) {
	r, _ := NewRand(3)
	seen := map[bool]bool{}
	for i := 0; i < 64; i++ {
		seen[CoinFlip(r)] = true
	}
	if !seen[true] || !seen[false] {
		t.Fatalf("coin flip stuck: %v", seen)
	}
}
