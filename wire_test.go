package rectpack

import (
	"encoding/json"
	"testing"
)

func TestToWireEchoesBinSideAndPlacements(t *testing.T) {
	inst := newInstance(t, 10, 5, 10, [][2]int{{10, 5}, {10, 5}})
	sol := NewGreedy(OrderByArea).Pack(inst, NewRNG(1))

	wire := ToWire(sol)
	if wire.BinSide != 10 {
		t.Errorf("BinSide: got %d, want %d", wire.BinSide, 10)
	}
	if len(wire.Bins) != 1 {
		t.Fatalf("bin count: got %d, want %d", len(wire.Bins), 1)
	}
	if got := len(wire.Bins[0].Rectangles); got != 2 {
		t.Fatalf("rectangle count: got %d, want %d", got, 2)
	}
	for _, wr := range wire.Bins[0].Rectangles {
		if wr.ID == "" {
			t.Errorf("rectangle id: got empty, want a stable identity")
		}
		if wr.W != 10 || wr.H != 5 {
			t.Errorf("dimensions: got %dx%d, want 10x5", wr.W, wr.H)
		}
	}
}

func TestMarshalSolutionRoundTrips(t *testing.T) {
	inst := newInstance(t, 10, 5, 5, [][2]int{{5, 5}, {5, 5}})
	sol := NewGreedy(OrderByArea).Pack(inst, NewRNG(1))

	data, err := MarshalSolution(sol)
	if err != nil {
		t.Fatalf("MarshalSolution: unexpected error %v", err)
	}

	var decoded WireSolution
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: unexpected error %v", err)
	}
	if decoded.BinSide != 10 || len(decoded.Bins) != 1 {
		t.Errorf("decoded: got side=%d bins=%d, want side=10 bins=1", decoded.BinSide, len(decoded.Bins))
	}
}

func TestToWireEmptySolution(t *testing.T) {
	wire := ToWire(Solution{})
	if wire.BinSide != 0 || len(wire.Bins) != 0 {
		t.Errorf("empty solution wire form: got %+v, want zero bins and side 0", wire)
	}
}
