package rectpack

import "github.com/google/uuid"

// ShelfMode selects which of ShelfBin's two placement strategies to use.
type ShelfMode int

const (
	// ShelfModeSequential only ever tries the top-most shelf, opening a
	// new one when the rectangle doesn't fit there. This is the default,
	// monotone packing mode.
	ShelfModeSequential ShelfMode = iota
	// ShelfModeBestFit searches every shelf tall enough for the
	// rectangle and chooses the best-scoring gap, ranked by a
	// GapFitFunc.
	ShelfModeBestFit
)

// shelf is a horizontal strip spanning the bin's width.
type shelf struct {
	StartY     int
	Height     int
	Gaps       []Gap
	Rectangles []*Rectangle
}

// Gap is a free horizontal span within a shelf: [XStart, XStart+Width).
type Gap struct {
	XStart int
	Width  int
}

// ShelfBin is the monotone shelf-packing alternative to the anchor-based
// Bin. It never removes a rectangle once placed, so it carries
// no spatial grid and no anchor set, just a bottom-up stack of shelves,
// each with its own list of horizontal gaps.
type ShelfBin struct {
	ID      uuid.UUID
	Side    int
	Mode    ShelfMode
	Fit     GapFitFunc
	shelves []*shelf
	used    int // H, total vertical extent used by shelves
}

// NewShelfBin creates an empty shelf bin in sequential mode.
func NewShelfBin(id uuid.UUID, side int) *ShelfBin {
	return &ShelfBin{ID: id, Side: side, Mode: ShelfModeSequential, Fit: BestShortSideFitGap}
}

// NewBestFitShelfBin creates an empty shelf bin in best-fit mode, ranking
// gaps by their shorter leftover side.
func NewBestFitShelfBin(id uuid.UUID, side int) *ShelfBin {
	return &ShelfBin{ID: id, Side: side, Mode: ShelfModeBestFit, Fit: BestShortSideFitGap}
}

// NewAreaFitShelfBin creates an empty shelf bin in best-fit mode, ranking
// gaps by leftover area instead.
func NewAreaFitShelfBin(id uuid.UUID, side int) *ShelfBin {
	return &ShelfBin{ID: id, Side: side, Mode: ShelfModeBestFit, Fit: BestAreaFitGap}
}

// Rects returns every rectangle placed across all shelves.
func (s *ShelfBin) Rects() []*Rectangle {
	var all []*Rectangle
	for _, sh := range s.shelves {
		all = append(all, sh.Rectangles...)
	}
	return all
}

// UsedHeight returns H, the vertical extent consumed by shelves so far.
func (s *ShelfBin) UsedHeight() int { return s.used }

// SideLength returns the bin's side length, satisfying PackedBin.
func (s *ShelfBin) SideLength() int { return s.Side }

// FreeArea reports the bin's remaining area, counting the unopened strip
// above the shelves as free and each shelf's open gaps as free.
func (s *ShelfBin) FreeArea() int {
	free := (s.Side - s.used) * s.Side
	for _, sh := range s.shelves {
		for _, g := range sh.Gaps {
			free += g.Width * sh.Height
		}
	}
	return free
}

// Place anchors r on an existing shelf or opens a new one. It never
// violates no-overlap and never exceeds L in either dimension.
func (s *ShelfBin) Place(r *Rectangle) bool {
	if r.Width > s.Side || r.Height > s.Side {
		return false
	}

	switch s.Mode {
	case ShelfModeBestFit:
		if s.placeBestFit(r) {
			return true
		}
	default:
		if len(s.shelves) > 0 {
			top := s.shelves[len(s.shelves)-1]
			if r.Height <= top.Height && s.placeInShelf(top, r) {
				return true
			}
		}
	}

	return s.openShelfAndPlace(r)
}

// placeBestFit searches every shelf tall enough for r and places in the
// best-scoring gap per s.Fit.
func (s *ShelfBin) placeBestFit(r *Rectangle) bool {
	var bestShelf *shelf
	bestGap := -1
	bestScore := 0

	for _, sh := range s.shelves {
		if sh.Height < r.Height {
			continue
		}
		for gi, g := range sh.Gaps {
			if g.Width < r.Width {
				continue
			}
			score := s.Fit(g.Width, sh.Height, sh.StartY, r.Width, r.Height)
			if bestShelf == nil || score < bestScore {
				bestShelf, bestGap, bestScore = sh, gi, score
			}
		}
	}

	if bestShelf == nil {
		return false
	}
	s.occupyGap(bestShelf, bestGap, r)
	return true
}

// placeInShelf places r in the first gap of sh wide enough for it.
func (s *ShelfBin) placeInShelf(sh *shelf, r *Rectangle) bool {
	for gi, g := range sh.Gaps {
		if g.Width >= r.Width {
			s.occupyGap(sh, gi, r)
			return true
		}
	}
	return false
}

// occupyGap anchors r at the start of gap index gi on sh, then shrinks or
// removes that gap.
func (s *ShelfBin) occupyGap(sh *shelf, gi int, r *Rectangle) {
	g := sh.Gaps[gi]
	r.X, r.Y = g.XStart, sh.StartY
	sh.Rectangles = append(sh.Rectangles, r)

	remaining := g.Width - r.Width
	if remaining == 0 {
		sh.Gaps = append(sh.Gaps[:gi], sh.Gaps[gi+1:]...)
	} else {
		sh.Gaps[gi] = Gap{XStart: g.XStart + r.Width, Width: remaining}
	}
}

// openShelfAndPlace opens a new shelf of height r.Height at the current
// used-height offset, provided it fits, and places r at its left edge.
func (s *ShelfBin) openShelfAndPlace(r *Rectangle) bool {
	if s.used+r.Height > s.Side {
		return false
	}
	sh := &shelf{StartY: s.used, Height: r.Height, Gaps: []Gap{{XStart: 0, Width: s.Side}}}
	s.shelves = append(s.shelves, sh)
	s.used += r.Height
	s.occupyGap(sh, 0, r)
	return true
}
