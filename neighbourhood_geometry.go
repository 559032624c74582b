package rectpack

// GeometryNeighbourhood starts from the worst case (every rectangle
// alone in its own bin) and generates neighbours by relocating
// rectangles from later-opened bins into earlier ones, front-loading moves
// from the most recently opened bins to encourage consolidation.
type GeometryNeighbourhood struct {
	Weights Weights
}

// NewGeometryNeighbourhood creates a GeometryNeighbourhood using the
// default composite weights.
func NewGeometryNeighbourhood() *GeometryNeighbourhood {
	return &GeometryNeighbourhood{Weights: DefaultWeights()}
}

func (g *GeometryNeighbourhood) start(inst *Instance, rng *RNG) Solution {
	bins := make([]*Bin, 0, inst.NumRectangles())
	for _, r := range inst.OrderedRectangles() {
		b := NewBin(rng.NextID(), inst.Side)
		b.Place(r, true)
		bins = append(bins, b)
	}
	return Solution{Bins: binsToPacked(bins)}
}

// neighbours clones the current bin list once, then walks source bins k in
// reverse order against every target bin j<k, moving each rectangle in k
// that first-fits into j. Every successful move is snapshotted as a
// candidate; the board keeps the 30 best by fitness.
func (g *GeometryNeighbourhood) neighbours(sol Solution, rng *RNG) []Solution {
	bins := cloneBins(sol)
	board := newCandidateBoard(30)

	k := len(bins) - 1
	for k >= 1 {
		src := bins[k]
		emptied := false

		for j := 0; j < k && !emptied; j++ {
			tgt := bins[j]
			snapshot := append([]*Rectangle{}, src.Rectangles...)
			for _, r := range snapshot {
				if !tgt.Place(r, true) {
					continue
				}
				src.Remove(r)
				if len(src.Rectangles) == 0 {
					bins = append(bins[:k], bins[k+1:]...)
					emptied = true
				}
				board.Add(Solution{Bins: binsToPacked(copyBinSlice(bins))}, g.Weights)
				if emptied {
					break
				}
			}
		}
		k--
	}

	return board.All()
}

func (g *GeometryNeighbourhood) score(sol Solution) float64 {
	return Score(sol, g.Weights)
}

func (g *GeometryNeighbourhood) exhausted() bool {
	return true
}
