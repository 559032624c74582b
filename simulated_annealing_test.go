package rectpack

import "testing"

func TestSimulatedAnnealingNeverWorsensGreedyBinCount(t *testing.T) {
	inst := newInstance(t, 10, 1, 8, [][2]int{{8, 4}, {4, 8}, {3, 3}, {2, 6}, {5, 5}})
	greedyBins := NewGreedy(OrderByArea).Pack(inst, NewRNG(1)).NumBins()

	sa := NewSimulatedAnnealing()
	sol := sa.Pack(inst, NewRNG(1))

	if sol.NumBins() > greedyBins {
		t.Errorf("NumBins: got %d, want <= starting greedy solution's %d", sol.NumBins(), greedyBins)
	}
	ok, violations := Validate(inst, sol)
	if !ok {
		t.Errorf("Validate: got violations %v, want none", violations)
	}
}

func TestSimulatedAnnealingPerturbNeverOpensNewBin(t *testing.T) {
	inst := newInstance(t, 10, 5, 5, [][2]int{{5, 5}, {5, 5}})
	sa := NewSimulatedAnnealing()
	current := NewGreedy(OrderByArea).Pack(inst, NewRNG(1))
	before := current.NumBins()

	rng := NewRNG(2)
	for i := 0; i < 20; i++ {
		candidate, ok := sa.perturb(current, rng)
		if ok && candidate.NumBins() > before {
			t.Fatalf("perturb opened a new bin: got %d bins, want <= %d", candidate.NumBins(), before)
		}
	}
}

func TestPlaceFirstFitNeverOpensABin(t *testing.T) {
	bins := []*Bin{NewBin(NewRNG(1).NextID(), 10)}
	tooBig := NewRectangle(NewRNG(2).NextID(), 11, 11)

	if placeFirstFit(bins, tooBig, true) {
		t.Errorf("placeFirstFit: got true, want false for a rectangle too large for the only bin")
	}
	if len(bins) != 1 {
		t.Errorf("bin count: got %d, want %d (no bin should be opened)", len(bins), 1)
	}
}
