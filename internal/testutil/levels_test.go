package testutil

import "testing"

func TestConstantLevels(t *testing.T) {
	levels := ConstantLevels(80, 5)
	if len(levels) != 5 {
		t.Fatalf("len = %d, want 5", len(levels))
	}
	for i, v := range levels {
		if v != 80 {
			t.Fatalf("levels[%d] = %v, want 80", i, v)
		}
	}
}

func TestDeterministicLevels(t *testing.T) {
	a := DeterministicLevels(42, 40, 90, 64)
	b := DeterministicLevels(42, 40, 90, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("levels not deterministic at index %d", i)
		}
	}
	for i, v := range a {
		if v < 40 || v >= 90 {
			t.Fatalf("levels[%d] = %v out of [40, 90)", i, v)
		}
	}
}

func TestDeterministicLevelsDifferentSeeds(t *testing.T) {
	a := DeterministicLevels(1, 40, 90, 16)
	b := DeterministicLevels(2, 40, 90, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical levels")
	}
}
