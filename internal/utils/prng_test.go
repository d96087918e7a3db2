package utils

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() || a.Intn(4) != b.Intn(4) {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestZeroSeedIsReplacedAndReported(t *testing.T) {
	p := NewPRNGService(0)
	if p.Seed() == 0 {
		t.Fatalf("expected a non-zero effective seed")
	}
}

func TestJitterRange(t *testing.T) {
	p := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		j := p.Jitter(0.2)
		if j < -0.1 || j >= 0.1 {
			t.Fatalf("jitter out of range: %f", j)
		}
	}
	if j := p.Jitter(0); j != 0 {
		t.Fatalf("zero spread must not jitter, got %f", j)
	}
}
