package core

import (
	"testing"
)

// scriptedSource returns a Uint32Source that yields the given values in
// order, then repeats the last value forever.
func scriptedSource(vals ...uint32) Uint32Source {
	i := 0
	return func() uint32 {
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	}
}

func TestIntNBasic(t *testing.T) {
	s := NewSampler(scriptedSource(0, 1, 2, 3, 4))

	for want := 0; want < 5; want++ {
		got := s.IntN(5)
		if got != want {
			t.Errorf("IntN(5) = %d, want %d", got, want)
		}
	}
}

func TestIntNRejectsBiasedDraws(t *testing.T) {
	// For n=3 the acceptance limit is floor(2^32/3)*3 = 4294967295, so the
	// single value 4294967295 must be redrawn.
	s := NewSampler(scriptedSource(4294967295, 7))

	got := s.IntN(3)
	if got != 7%3 {
		t.Errorf("IntN(3) = %d, want %d (rejected draw should be retried)", got, 7%3)
	}
}

func TestIntNOne(t *testing.T) {
	// n=1 accepts every draw and always returns 0.
	s := NewSampler(scriptedSource(0, 12345, 4294967295))

	for i := 0; i < 3; i++ {
		if got := s.IntN(1); got != 0 {
			t.Errorf("IntN(1) = %d, want 0", got)
		}
	}
}

func TestIntNPanicsOnNonPositive(t *testing.T) {
	s := NewSampler(scriptedSource(0))

	defer func() {
		if recover() == nil {
			t.Error("IntN(0) should panic")
		}
	}()
	s.IntN(0)
}

func TestCryptoSamplerRange(t *testing.T) {
	s := CryptoSampler()

	for i := 0; i < 1000; i++ {
		got := s.IntN(5)
		if got < 0 || got >= 5 {
			t.Fatalf("IntN(5) = %d, out of range", got)
		}
	}
}

func TestCryptoSamplerRoughUniformity(t *testing.T) {
	// Statistical check: with 5000 draws over [0,5) each bucket expects
	// ~1000 hits. The tolerance is over 7 standard deviations wide, so a
	// correct implementation essentially never fails.
	s := CryptoSampler()

	const draws = 5000
	counts := make([]int, 5)
	for i := 0; i < draws; i++ {
		counts[s.IntN(5)]++
	}

	for v, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("value %d drawn %d times out of %d, expected roughly %d", v, c, draws, draws/5)
		}
	}
}
