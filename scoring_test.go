package rectpack

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestUtilisationFullBin(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.Place(NewRectangle(uuid.New(), 10, 10), true)

	if got := Utilisation(b); got != 1.0 {
		t.Errorf("Utilisation: got %f, want %f", got, 1.0)
	}
}

func TestUtilisationHalfBin(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.Place(NewRectangle(uuid.New(), 10, 5), true)

	if got := Utilisation(b); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Utilisation: got %f, want %f", got, 0.5)
	}
}

func TestMinUtilisationPicksWorstBin(t *testing.T) {
	full := NewBin(uuid.New(), 10)
	full.Place(NewRectangle(uuid.New(), 10, 10), true)

	sparse := NewBin(uuid.New(), 10)
	sparse.Place(NewRectangle(uuid.New(), 2, 2), true)

	sol := Solution{Bins: []PackedBin{full, sparse}}
	got := MinUtilisation(sol)
	want := 0.04
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MinUtilisation: got %f, want %f", got, want)
	}
}

func TestCompactnessPerfectPacking(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.Place(NewRectangle(uuid.New(), 10, 10), true)

	if got := Compactness(b); got != 1.0 {
		t.Errorf("Compactness: got %f, want %f", got, 1.0)
	}
}

func TestContiguityAllFourEdges(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.Place(NewRectangle(uuid.New(), 10, 10), true)

	if got := Contiguity(b); got != 1.0 {
		t.Errorf("Contiguity: got %f, want %f", got, 1.0)
	}
}

func TestIrregularGapZeroWhenFilled(t *testing.T) {
	b := NewBin(uuid.New(), 10)
	b.Place(NewRectangle(uuid.New(), 10, 10), true)

	if got := IrregularGap(b); got != 0 {
		t.Errorf("IrregularGap: got %f, want %f", got, 0.0)
	}
}

func TestScoreDroppingAnEmptyBinStrictlyImproves(t *testing.T) {
	w := DefaultWeights()

	full := NewBin(uuid.New(), 10)
	full.Place(NewRectangle(uuid.New(), 10, 10), true)
	empty := NewBin(uuid.New(), 10)

	with := Solution{Bins: []PackedBin{full, empty}}
	without := Solution{Bins: []PackedBin{full}}

	if Score(without, w) <= Score(with, w) {
		t.Errorf("Score: got %f vs %f, want dropping the empty bin to strictly improve",
			Score(without, w), Score(with, w))
	}
}

func TestScoreFewerBinsScoresHigher(t *testing.T) {
	w := DefaultWeights()

	oneBin := NewBin(uuid.New(), 10)
	oneBin.Place(NewRectangle(uuid.New(), 10, 10), true)
	solOne := Solution{Bins: []PackedBin{oneBin}}

	twoA := NewBin(uuid.New(), 10)
	twoA.Place(NewRectangle(uuid.New(), 5, 10), true)
	twoB := NewBin(uuid.New(), 10)
	twoB.Place(NewRectangle(uuid.New(), 5, 10), true)
	solTwo := Solution{Bins: []PackedBin{twoA, twoB}}

	if Score(solOne, w) <= Score(solTwo, w) {
		t.Errorf("Score: one-bin solution should outscore a two-bin solution of equal content")
	}
}
