package rectpack

import (
	"testing"

	"github.com/google/uuid"
)

func TestRectangleArea(t *testing.T) {
	r := NewRectangle(uuid.New(), 6, 4)
	if got := r.Area(); got != 24 {
		t.Errorf("Area: got %d, want %d", got, 24)
	}
}

func TestRectangleRotate(t *testing.T) {
	r := NewRectangle(uuid.New(), 6, 4)
	r.Rotate()
	if r.Width != 4 || r.Height != 6 {
		t.Errorf("dimensions after rotate: got %dx%d, want %dx%d", r.Width, r.Height, 4, 6)
	}
}

func TestRectangleCopyIsIndependent(t *testing.T) {
	r := NewRectangle(uuid.New(), 6, 4)
	r.X, r.Y = 2, 3
	cp := r.Copy()
	cp.X = 99

	if r.X != 2 {
		t.Errorf("original mutated by copy: got X=%d, want %d", r.X, 2)
	}
	if cp.ID != r.ID {
		t.Errorf("copy ID: got %v, want %v", cp.ID, r.ID)
	}
}

func TestRectangleLabel(t *testing.T) {
	r := NewRectangle(uuid.New(), 5, 5)
	r.X, r.Y = 0, 5
	want := "5x5 at [0,5]"
	if got := r.Label(); got != want {
		t.Errorf("Label: got %q, want %q", got, want)
	}
}

func TestRectangleFitsWithin(t *testing.T) {
	r := NewRectangle(uuid.New(), 4, 3)
	cases := []struct {
		x, y, l int
		want    bool
	}{
		{0, 0, 10, true},
		{7, 0, 10, false},
		{0, 8, 10, false},
		{-1, 0, 10, false},
	}
	for _, c := range cases {
		if got := r.fitsWithin(c.x, c.y, c.l); got != c.want {
			t.Errorf("fitsWithin(%d,%d,%d): got %v, want %v", c.x, c.y, c.l, got, c.want)
		}
	}
}
