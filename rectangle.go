package rectpack

import (
	"fmt"

	"github.com/google/uuid"
)

// Rectangle is the value object the whole packing core operates on: a
// positive integer width and height, an anchor position, and a stable
// identity that survives cloning.
//
// Position is only ever mutated through a Bin's placement operations;
// Rotate swaps dimensions in place and leaves the anchor untouched, since
// re-anchoring after a rotation is the Bin's responsibility.
type Rectangle struct {
	ID     uuid.UUID
	Width  int
	Height int
	X      int
	Y      int
}

// NewRectangle creates a Rectangle with the given dimensions, anchored at
// the origin. id is produced by the caller's identity source so that runs
// sharing a seed assign matching ids.
func NewRectangle(id uuid.UUID, width, height int) *Rectangle {
	return &Rectangle{ID: id, Width: width, Height: height}
}

// Area returns width * height.
func (r *Rectangle) Area() int {
	return r.Width * r.Height
}

// Rotate swaps Width and Height in place.
func (r *Rectangle) Rotate() {
	r.Width, r.Height = r.Height, r.Width
}

// Copy returns an independent Rectangle with the same identity, dimensions
// and anchor. Used whenever a candidate solution is cloned for search.
func (r *Rectangle) Copy() *Rectangle {
	cp := *r
	return &cp
}

// Label returns a short human-readable description of the rectangle and
// its anchor.
func (r *Rectangle) Label() string {
	return fmt.Sprintf("%dx%d at [%d,%d]", r.Width, r.Height, r.X, r.Y)
}

// fitsWithin reports whether the rectangle, anchored at (x,y), lies
// entirely inside a side-L square.
func (r *Rectangle) fitsWithin(x, y, l int) bool {
	return x >= 0 && y >= 0 && x+r.Width <= l && y+r.Height <= l
}
