package rectpack

import "testing"

func TestPackDispatchesEveryAlgorithmKind(t *testing.T) {
	inst := newInstance(t, 10, 1, 6, [][2]int{{6, 6}, {4, 4}, {3, 3}, {2, 2}})

	kinds := []AlgorithmKind{
		AlgorithmGreedyArea,
		AlgorithmGreedyPerimeter,
		AlgorithmSimAnneal,
		AlgorithmBacktracking,
		AlgorithmLocalSearchGeometry,
		AlgorithmLocalSearchRule,
		AlgorithmLocalSearchOverlap,
	}

	for _, kind := range kinds {
		spec := DefaultAlgorithmSpec()
		spec.Kind = kind
		spec.MaxTimeSeconds = 2
		spec.MaxIterations = 3

		sol, err := Pack(inst, spec, 42)
		if err != nil {
			t.Fatalf("Pack(%v): unexpected error %v", kind, err)
		}
		if sol.NumBins() == 0 {
			t.Errorf("Pack(%v): got 0 bins, want at least 1", kind)
		}
		ok, violations := Validate(inst, sol)
		if !ok {
			t.Errorf("Pack(%v): invalid solution, violations=%v", kind, violations)
		}
	}
}

func TestPackUnknownKindErrors(t *testing.T) {
	inst := newInstance(t, 10, 1, 5, [][2]int{{5, 5}})
	spec := AlgorithmSpec{Kind: AlgorithmKind(999)}

	if _, err := Pack(inst, spec, 1); err == nil {
		t.Errorf("Pack with unknown kind: got nil error, want one")
	}
}

func TestPackIsReproducibleForAFixedSeed(t *testing.T) {
	inst := newInstance(t, 10, 1, 8, [][2]int{{8, 4}, {4, 8}, {3, 3}, {2, 6}})
	spec := DefaultAlgorithmSpec()
	spec.Kind = AlgorithmSimAnneal

	sol1, err := Pack(inst, spec, 123)
	if err != nil {
		t.Fatalf("Pack: unexpected error %v", err)
	}
	sol2, err := Pack(inst, spec, 123)
	if err != nil {
		t.Fatalf("Pack: unexpected error %v", err)
	}

	if sol1.NumBins() != sol2.NumBins() {
		t.Errorf("same-seed runs diverged: got %d and %d bins", sol1.NumBins(), sol2.NumBins())
	}
}

func TestAlgorithmKindString(t *testing.T) {
	if got := AlgorithmGreedyArea.String(); got != "greedy_area" {
		t.Errorf("String: got %q, want %q", got, "greedy_area")
	}
	if got := AlgorithmKind(999).String(); got != "unknown" {
		t.Errorf("String of unrecognised kind: got %q, want %q", got, "unknown")
	}
}
