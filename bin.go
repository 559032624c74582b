package rectpack

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// anchor is a candidate insertion coordinate inside a Bin.
type anchor struct {
	X, Y int
}

// Bin is the anchor-based container: it keeps an ordered
// multiset of placed rectangles, a set of candidate anchor points, the
// running free area, and a spatial grid that restricts overlap queries to
// rectangles that could plausibly intersect a candidate footprint.
//
// Two Bins compare equal across clones by ID, not by pointer identity;
// Copy preserves it.
type Bin struct {
	ID         uuid.UUID
	Side       int
	Rectangles []*Rectangle

	anchors map[anchor]struct{}
	free    int
	grid    *grid
}

// NewBin creates an empty side-L bin with the single initial anchor
// (0,0).
func NewBin(id uuid.UUID, side int) *Bin {
	b := &Bin{
		ID:      id,
		Side:    side,
		anchors: map[anchor]struct{}{{0, 0}: {}},
		free:    side * side,
		grid:    newGrid(defaultGridCellSize),
	}
	return b
}

// Area returns L².
func (b *Bin) Area() int { return b.Side * b.Side }

// FreeArea returns F, the running free-area tally.
func (b *Bin) FreeArea() int { return b.free }

// SideLength returns the bin's side length, satisfying PackedBin.
func (b *Bin) SideLength() int { return b.Side }

// Rects returns the placed rectangles, satisfying PackedBin.
func (b *Bin) Rects() []*Rectangle { return b.Rectangles }

// Utilisation returns (L² - F) / L².
func (b *Bin) Utilisation() float64 {
	area := b.Area()
	if area == 0 {
		return 0
	}
	return float64(area-b.free) / float64(area)
}

// Label returns the bin's dimensions plus its utilisation.
func (b *Bin) Label() string {
	return fmt.Sprintf("%dx%d %.1f%%", b.Side, b.Side, b.Utilisation()*100)
}

// sortedAnchors returns the anchor set in a deterministic total order:
// ascending by x+y, ties broken by x then y.
func (b *Bin) sortedAnchors() []anchor {
	out := make([]anchor, 0, len(b.anchors))
	for a := range b.anchors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].X+out[i].Y, out[j].X+out[j].Y
		if si != sj {
			return si < sj
		}
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// ComputeOverlap sums the intersection area between a width x height
// footprint anchored at (x,y) and every placed rectangle sharing a grid
// cell with it. Each candidate rectangle is visited at most once.
func (b *Bin) ComputeOverlap(width, height, x, y int) int {
	total := 0
	for _, placed := range b.grid.candidates(x, y, width, height) {
		overlapW := minInt(placed.X+placed.Width, x+width) - maxInt(placed.X, x)
		overlapH := minInt(placed.Y+placed.Height, y+height) - maxInt(placed.Y, y)
		if overlapW > 0 && overlapH > 0 {
			total += overlapW * overlapH
		}
	}
	return total
}

// CanPlace reports whether a width x height footprint anchored at (x,y)
// fits within the bin and overlaps nothing already placed.
func (b *Bin) CanPlace(width, height, x, y int) bool {
	if x < 0 || y < 0 || x+width > b.Side || y+height > b.Side {
		return false
	}
	return b.ComputeOverlap(width, height, x, y) == 0
}

// Place attempts to anchor r within the bin.
//
// When check is true, anchors are tried in the deterministic ascending
// x+y order; at each anchor both r's current orientation and its
// 90°-rotated orientation are tested, and the rectangle is placed (rotated
// in place if needed) at the first anchor where either fits. An
// area-budget short-circuit refuses immediately if r cannot possibly fit.
//
// When check is false, an arbitrary anchor that merely fits within the
// bin's bounds is used, with no overlap test. That path exists only for
// the partial-overlap neighbourhood's controlled re-insertion during
// annealing.
func (b *Bin) Place(r *Rectangle, check bool) bool {
	if r.Width*r.Height > b.free {
		return false
	}

	if !check {
		return b.placeUnchecked(r)
	}

	for _, a := range b.sortedAnchors() {
		if b.CanPlace(r.Width, r.Height, a.X, a.Y) {
			b.commit(r, a.X, a.Y)
			return true
		}
		if r.Width != r.Height && b.CanPlace(r.Height, r.Width, a.X, a.Y) {
			r.Rotate()
			b.commit(r, a.X, a.Y)
			return true
		}
	}
	return false
}

func (b *Bin) placeUnchecked(r *Rectangle) bool {
	anchors := b.sortedAnchors()
	for _, a := range anchors {
		if r.fitsWithin(a.X, a.Y, b.Side) {
			b.commit(r, a.X, a.Y)
			return true
		}
	}
	return false
}

// PlaceNoCheck appends r to the bin without updating anchors or the grid
// and without any overlap test. It exists only to build the fully
// overlapped starting solution for the partial-overlap neighbourhood;
// F is still decremented by r's area, which can drive it negative when
// the combined rectangle area exceeds L².
func (b *Bin) PlaceNoCheck(r *Rectangle) {
	b.Rectangles = append(b.Rectangles, r)
	b.free -= r.Area()
}

// commit anchors r at (x,y), updates F, the anchor set and the grid.
func (b *Bin) commit(r *Rectangle, x, y int) {
	r.X, r.Y = x, y
	b.Rectangles = append(b.Rectangles, r)
	b.free -= r.Area()

	delete(b.anchors, anchor{x, y})
	if x+r.Width < b.Side {
		b.anchors[anchor{x + r.Width, y}] = struct{}{}
	}
	if y+r.Height < b.Side {
		b.anchors[anchor{x, y + r.Height}] = struct{}{}
	}
	b.grid.insert(r, x, y, r.Width, r.Height)
}

// Remove takes r out of the bin, restoring its own anchor and discarding
// the two anchors it generated at placement.
func (b *Bin) Remove(r *Rectangle) {
	idx := -1
	for i, cand := range b.Rectangles {
		if cand == r {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	b.Rectangles = append(b.Rectangles[:idx], b.Rectangles[idx+1:]...)
	b.free += r.Area()

	b.anchors[anchor{r.X, r.Y}] = struct{}{}
	if r.X+r.Width < b.Side {
		delete(b.anchors, anchor{r.X + r.Width, r.Y})
	}
	if r.Y+r.Height < b.Side {
		delete(b.anchors, anchor{r.X, r.Y + r.Height})
	}
	b.grid.remove(r, r.X, r.Y, r.Width, r.Height)
}

// reindex rebuilds the anchor set, grid and free-area tally from the
// bin's current rectangle list. The partial-overlap neighbourhood uses
// it to return a bin to checked-placement bookkeeping after a phase of
// unchecked stacking, during which neither anchors nor the grid were
// maintained.
func (b *Bin) reindex() {
	b.anchors = map[anchor]struct{}{{0, 0}: {}}
	b.grid = newGrid(defaultGridCellSize)
	b.free = b.Side * b.Side

	for _, r := range b.Rectangles {
		b.grid.insert(r, r.X, r.Y, r.Width, r.Height)
		b.free -= r.Area()
		if r.X+r.Width < b.Side {
			b.anchors[anchor{r.X + r.Width, r.Y}] = struct{}{}
		}
		if r.Y+r.Height < b.Side {
			b.anchors[anchor{r.X, r.Y + r.Height}] = struct{}{}
		}
	}
	for _, r := range b.Rectangles {
		delete(b.anchors, anchor{r.X, r.Y})
	}
}

// Copy deep-clones the bin: an independent rectangle slice, anchor set and
// grid, with the same ID.
func (b *Bin) Copy() *Bin {
	nb := &Bin{
		ID:      b.ID,
		Side:    b.Side,
		free:    b.free,
		anchors: make(map[anchor]struct{}, len(b.anchors)),
	}

	byOld := make(map[*Rectangle]*Rectangle, len(b.Rectangles))
	nb.Rectangles = make([]*Rectangle, len(b.Rectangles))
	for i, r := range b.Rectangles {
		cp := r.Copy()
		nb.Rectangles[i] = cp
		byOld[r] = cp
	}
	for a := range b.anchors {
		nb.anchors[a] = struct{}{}
	}
	nb.grid = b.grid.copy(byOld)
	return nb
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
