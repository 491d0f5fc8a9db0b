package utils

import "testing"

func TestRNGDeterministicPerSeed(t *testing.T) {
	a, b := NewRNG(123), NewRNG(123)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestBernoulliExtremes(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 50; i++ {
		if rng.Bernoulli(0) {
			t.Fatal("Bernoulli(0) succeeded")
		}
		if !rng.Bernoulli(1) {
			t.Fatal("Bernoulli(1) failed")
		}
	}
}

func TestIntNBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 100; i++ {
		if v := rng.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN(5) = %d out of range", v)
		}
	}
	if rng.IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}
