package rng

import "testing"

func TestNew_SameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if av, bv := a.IntN(1000), b.IntN(1000); av != bv {
			t.Fatalf("draw %d diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			same = false
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical 20-draw streams")
	}
}

func TestBetween_InclusiveBounds(t *testing.T) {
	r := New(7)
	sawLo, sawHi := false, false
	for i := 0; i < 1000; i++ {
		v := r.Between(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Between(3,6) = %d out of range", v)
		}
		sawLo = sawLo || v == 3
		sawHi = sawHi || v == 6
	}
	if !sawLo || !sawHi {
		t.Errorf("1000 draws never hit both bounds (lo=%v hi=%v)", sawLo, sawHi)
	}
}

func TestBetween_DegenerateRangeCollapses(t *testing.T) {
	r := New(7)
	if v := r.Between(5, 5); v != 5 {
		t.Errorf("Between(5,5) = %d, want 5", v)
	}
	if v := r.Between(5, 2); v != 5 {
		t.Errorf("Between(5,2) = %d, want lo", v)
	}
}
