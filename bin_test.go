package rectpack

import (
	"testing"

	"github.com/google/uuid"
)

func TestBinPlaceSingleRectangle(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	r := NewRectangle(uuid.New(), 10, 10)

	if !b.Place(r, true) {
		t.Fatalf("Place: got false, want true")
	}
	if r.X != 0 || r.Y != 0 {
		t.Errorf("placement: got [%d,%d], want [0,0]", r.X, r.Y)
	}
	if b.FreeArea() != 0 {
		t.Errorf("FreeArea: got %d, want %d", b.FreeArea(), 0)
	}
}

func TestBinPlaceAtSecondAnchor(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	r1 := NewRectangle(uuid.New(), 10, 5)
	r2 := NewRectangle(uuid.New(), 10, 5)

	if !b.Place(r1, true) {
		t.Fatalf("first Place: got false, want true")
	}
	if !b.Place(r2, true) {
		t.Fatalf("second Place: got false, want true")
	}
	if r2.X != 0 || r2.Y != 5 {
		t.Errorf("second rectangle anchor: got [%d,%d], want [0,5]", r2.X, r2.Y)
	}
}

func TestBinPlaceFourQuadrants(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	for i := 0; i < 4; i++ {
		r := NewRectangle(uuid.New(), 5, 5)
		if !b.Place(r, true) {
			t.Fatalf("quadrant %d: Place got false, want true", i)
		}
	}
	if len(b.Rectangles) != 4 {
		t.Errorf("rectangle count: got %d, want %d", len(b.Rectangles), 4)
	}
	if b.FreeArea() != 0 {
		t.Errorf("FreeArea: got %d, want %d", b.FreeArea(), 0)
	}
}

func TestBinPlaceRefusesOverlap(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	r1 := NewRectangle(uuid.New(), 6, 6)
	b.Place(r1, true)

	r2 := NewRectangle(uuid.New(), 6, 6)
	if b.CanPlace(r2.Width, r2.Height, 0, 0) {
		t.Errorf("CanPlace at an occupied anchor: got true, want false")
	}
}

func TestBinPlaceRotatesToFit(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	wide := NewRectangle(uuid.New(), 10, 10)
	b.Place(wide, true)
	b.Remove(wide)

	tall := NewRectangle(uuid.New(), 3, 7)
	if !b.Place(tall, true) {
		t.Fatalf("Place: got false, want true")
	}

	rotated := NewRectangle(uuid.New(), 3, 10)
	b2 := NewBin(uuid.New(), 10)
	first := NewRectangle(uuid.New(), 10, 7)
	b2.Place(first, true)
	if !b2.Place(rotated, true) {
		t.Fatalf("rotated Place: got false, want true")
	}
	if rotated.Width != 10 || rotated.Height != 3 {
		t.Errorf("rotated dimensions: got %dx%d, want 10x3", rotated.Width, rotated.Height)
	}
}

func TestBinRemoveRestoresFreeArea(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	r := NewRectangle(uuid.New(), 4, 4)
	b.Place(r, true)
	b.Remove(r)

	if b.FreeArea() != 100 {
		t.Errorf("FreeArea after remove: got %d, want %d", b.FreeArea(), 100)
	}
	if len(b.Rectangles) != 0 {
		t.Errorf("rectangle count after remove: got %d, want %d", len(b.Rectangles), 0)
	}
}

func TestBinPlaceThenRemoveRestoresPriorState(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.Place(NewRectangle(uuid.New(), 4, 4), true)

	anchorsBefore := make(map[anchor]struct{}, len(b.anchors))
	for a := range b.anchors {
		anchorsBefore[a] = struct{}{}
	}
	freeBefore := b.FreeArea()
	countBefore := len(b.Rectangles)

	r := NewRectangle(uuid.New(), 3, 3)
	if !b.Place(r, true) {
		t.Fatalf("Place: got false, want true")
	}
	b.Remove(r)

	if b.FreeArea() != freeBefore {
		t.Errorf("FreeArea: got %d, want %d", b.FreeArea(), freeBefore)
	}
	if len(b.Rectangles) != countBefore {
		t.Errorf("rectangle count: got %d, want %d", len(b.Rectangles), countBefore)
	}
	if len(b.anchors) != len(anchorsBefore) {
		t.Fatalf("anchor count: got %d, want %d", len(b.anchors), len(anchorsBefore))
	}
	for a := range anchorsBefore {
		if _, ok := b.anchors[a]; !ok {
			t.Errorf("anchor (%d,%d) lost across place/remove", a.X, a.Y)
		}
	}
	if got := len(b.grid.candidates(0, 0, 10, 10)); got != countBefore {
		t.Errorf("grid candidates: got %d, want %d", got, countBefore)
	}
}

func TestBinCopyIsIndependent(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	r := NewRectangle(uuid.New(), 4, 4)
	b.Place(r, true)

	cp := b.Copy()
	extra := NewRectangle(uuid.New(), 4, 4)
	cp.Place(extra, true)

	if len(b.Rectangles) != 1 {
		t.Errorf("original bin mutated by copy: got %d rectangles, want %d", len(b.Rectangles), 1)
	}
	if cp.ID != b.ID {
		t.Errorf("copy ID: got %v, want %v", cp.ID, b.ID)
	}
}

func TestBinReindexRestoresCheckedPlacement(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.PlaceNoCheck(NewRectangle(uuid.New(), 6, 6))

	if !b.CanPlace(4, 4, 0, 0) {
		t.Fatalf("CanPlace before reindex: got false, want true (unchecked resident is invisible)")
	}
	b.reindex()
	if b.CanPlace(4, 4, 0, 0) {
		t.Errorf("CanPlace after reindex: got true, want false")
	}
	if b.FreeArea() != 64 {
		t.Errorf("FreeArea after reindex: got %d, want %d", b.FreeArea(), 64)
	}
}

func TestBinPlaceTooLargeRefused(t *testing.T) {
	b := NewBin(uuid.New(), 8)
	r := NewRectangle(uuid.New(), 9, 1)
	if b.Place(r, true) {
		t.Errorf("Place of oversize rectangle: got true, want false")
	}
}
