package rectpack

// grid is a uniform spatial hash indexing rectangles by the cells their
// bounding boxes touch, used by Bin to restrict overlap queries to
// rectangles that could plausibly intersect a candidate placement instead
// of scanning every placed rectangle.
//
// cellSize is small and fixed (see defaultGridCellSize); for the moderate
// bin sides this system targets a dense map keyed by packed (gx,gy) is
// simpler than a nested array and just as fast.
type grid struct {
	cellSize int
	cells    map[gridCell][]*Rectangle
}

type gridCell struct {
	x, y int
}

// defaultGridCellSize keeps cells fine-grained relative to typical
// rectangle dimensions.
const defaultGridCellSize = 2

func newGrid(cellSize int) *grid {
	if cellSize <= 0 {
		cellSize = defaultGridCellSize
	}
	return &grid{cellSize: cellSize, cells: make(map[gridCell][]*Rectangle)}
}

// cellsFor returns the cells a width x height footprint anchored at (x,y)
// overlaps.
func (g *grid) cellsFor(x, y, width, height int) []gridCell {
	startX, startY := floorDiv(x, g.cellSize), floorDiv(y, g.cellSize)
	endX, endY := floorDiv(x+width-1, g.cellSize), floorDiv(y+height-1, g.cellSize)

	cells := make([]gridCell, 0, (endX-startX+1)*(endY-startY+1))
	for gx := startX; gx <= endX; gx++ {
		for gy := startY; gy <= endY; gy++ {
			cells = append(cells, gridCell{gx, gy})
		}
	}
	return cells
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -((-a + b - 1) / b)
}

// insert indexes r under every cell its footprint (x,y,w,h) touches.
func (g *grid) insert(r *Rectangle, x, y, width, height int) {
	for _, c := range g.cellsFor(x, y, width, height) {
		g.cells[c] = append(g.cells[c], r)
	}
}

// remove drops r from every cell its footprint touches.
func (g *grid) remove(r *Rectangle, x, y, width, height int) {
	for _, c := range g.cellsFor(x, y, width, height) {
		bucket := g.cells[c]
		for i, cand := range bucket {
			if cand == r {
				bucket[i] = bucket[len(bucket)-1]
				g.cells[c] = bucket[:len(bucket)-1]
				break
			}
		}
		if len(g.cells[c]) == 0 {
			delete(g.cells, c)
		}
	}
}

// candidates returns, without duplicates, every rectangle sharing at least
// one cell with the footprint (x,y,width,height).
func (g *grid) candidates(x, y, width, height int) []*Rectangle {
	seen := make(map[*Rectangle]struct{})
	var out []*Rectangle
	for _, c := range g.cellsFor(x, y, width, height) {
		for _, r := range g.cells[c] {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// copy returns an independent grid pointing at the replacement rectangles
// given in byOld, a map from the original rectangle pointers to their
// cloned counterparts.
func (g *grid) copy(byOld map[*Rectangle]*Rectangle) *grid {
	ng := newGrid(g.cellSize)
	for cell, bucket := range g.cells {
		newBucket := make([]*Rectangle, len(bucket))
		for i, r := range bucket {
			if mapped, ok := byOld[r]; ok {
				newBucket[i] = mapped
			} else {
				newBucket[i] = r
			}
		}
		ng.cells[cell] = newBucket
	}
	return ng
}
