package rectpack

import (
	"math"
	"sort"
)

const overlapPenaltyFactor = 1e6

// OverlapNeighbourhood starts from a single bin holding
// every rectangle stacked with full overlap, then anneals a tolerance τ
// from 1 down to 0 over K iterations, each round relocating the
// worst-overlapping rectangles to relieve pressure, before a final
// clean-up phase once τ has bottomed out.
type OverlapNeighbourhood struct {
	Weights Weights
	K       int
	side    int
	k       int
	tau     float64
}

// NewOverlapNeighbourhood creates an OverlapNeighbourhood with the
// default cap K=10.
func NewOverlapNeighbourhood() *OverlapNeighbourhood {
	return &OverlapNeighbourhood{Weights: DefaultWeights(), K: 10}
}

func (on *OverlapNeighbourhood) start(inst *Instance, rng *RNG) Solution {
	on.side = inst.Side
	on.k = 0
	on.tau = 1

	bin := NewBin(rng.NextID(), inst.Side)
	for _, orig := range inst.Rectangles {
		bin.PlaceNoCheck(orig.Copy())
	}
	if bin.FreeArea() == 0 {
		on.k = on.K
	}
	return Solution{Bins: []PackedBin{bin}}
}

func (on *OverlapNeighbourhood) exhausted() bool {
	return on.k >= on.K
}

// pairOverlapArea returns the intersection area of two placed rectangles.
func pairOverlapArea(a, b *Rectangle) int {
	overlapW := minInt(a.X+a.Width, b.X+b.Width) - maxInt(a.X, b.X)
	overlapH := minInt(a.Y+a.Height, b.Y+b.Height) - maxInt(a.Y, b.Y)
	if overlapW <= 0 || overlapH <= 0 {
		return 0
	}
	return overlapW * overlapH
}

// binTotalOverlap sums overlap area across every pair in b.
func binTotalOverlap(b *Bin) int {
	total := 0
	rs := b.Rectangles
	for i := 0; i < len(rs); i++ {
		for j := i + 1; j < len(rs); j++ {
			total += pairOverlapArea(rs[i], rs[j])
		}
	}
	return total
}

// rectContribution sums r's overlap against every other rectangle in b.
func rectContribution(b *Bin, r *Rectangle) int {
	total := 0
	for _, other := range b.Rectangles {
		if other == r {
			continue
		}
		total += pairOverlapArea(r, other)
	}
	return total
}

// penalty charges every same-bin pair whose overlap ratio exceeds τ
// with (ratio-τ)*P.
func (on *OverlapNeighbourhood) penalty(bins []*Bin) float64 {
	total := 0.0
	for _, b := range bins {
		rs := b.Rectangles
		for i := 0; i < len(rs); i++ {
			for j := i + 1; j < len(rs); j++ {
				overlap := pairOverlapArea(rs[i], rs[j])
				if overlap == 0 {
					continue
				}
				maxArea := maxInt(rs[i].Area(), rs[j].Area())
				if maxArea == 0 {
					continue
				}
				ratio := float64(overlap) / float64(maxArea)
				if ratio > on.tau {
					total += (ratio - on.tau) * overlapPenaltyFactor
				}
			}
		}
	}
	return total
}

func (on *OverlapNeighbourhood) score(sol Solution) float64 {
	bins := make([]*Bin, 0, len(sol.Bins))
	for _, b := range sol.Bins {
		if bb, ok := b.(*Bin); ok {
			bins = append(bins, bb)
		}
	}
	return Score(sol, on.Weights) - on.penalty(bins)
}

func (on *OverlapNeighbourhood) neighbours(sol Solution, rng *RNG) []Solution {
	on.k++
	on.tau = math.Max(0, 1-float64(on.k)/float64(on.K))

	if on.tau > 0.001 {
		return on.anneal(sol, rng)
	}
	return on.cleanup(sol, rng)
}

func (on *OverlapNeighbourhood) anneal(sol Solution, rng *RNG) []Solution {
	board := newCandidateBoard(20)
	for attempt := 0; attempt < 20; attempt++ {
		bins := on.cloneAsBins(sol)
		if on.relocateWorst(&bins, rng) {
			board.AddScored(Solution{Bins: binsToPacked(bins)}, on.score(Solution{Bins: binsToPacked(bins)}))
		}
	}
	return board.All()
}

// relocateWorst picks the most-overlapping bin, pops its top-overlap
// rectangles (count = ceil(len/k)) and re-places each into a random
// different bin via Place(check=false), opening a fresh bin instead
// whenever the target would cross 80% projected utilisation. reports
// whether any rectangle moved.
func (on *OverlapNeighbourhood) relocateWorst(binsPtr *[]*Bin, rng *RNG) bool {
	bins := *binsPtr
	worst := -1
	worstOverlap := 0
	for i, b := range bins {
		if o := binTotalOverlap(b); o > worstOverlap {
			worst, worstOverlap = i, o
		}
	}
	if worst == -1 {
		return false
	}

	src := bins[worst]
	count := (len(src.Rectangles) + on.k - 1) / on.k
	if count < 1 {
		count = 1
	}
	if count > len(src.Rectangles) {
		count = len(src.Rectangles)
	}

	ranked := append([]*Rectangle{}, src.Rectangles...)
	sort.Slice(ranked, func(i, j int) bool {
		return rectContribution(src, ranked[i]) > rectContribution(src, ranked[j])
	})
	popped := ranked[:count]
	for _, r := range popped {
		src.Remove(r)
	}

	for _, r := range popped {
		on.reinsertAnnealed(binsPtr, worst, r, rng)
	}
	return true
}

// reinsertAnnealed re-places r into a randomly chosen bin other than
// excludeIdx, opening a fresh bin via *binsPtr append whenever the target
// would cross 80% projected utilisation, and falling back to an unchecked
// insertion after 100 failed attempts.
func (on *OverlapNeighbourhood) reinsertAnnealed(binsPtr *[]*Bin, excludeIdx int, r *Rectangle, rng *RNG) {
	for attempt := 0; attempt < 100; attempt++ {
		bins := *binsPtr
		if len(bins) <= 1 {
			break
		}
		idx := rng.Intn(len(bins))
		if idx == excludeIdx {
			continue
		}
		target := bins[idx]
		occupied := target.Area() - target.FreeArea()
		if float64(occupied+r.Area())/float64(target.Area()) > 0.8 {
			fresh := NewBin(rng.NextID(), on.side)
			fresh.Place(r, false)
			*binsPtr = append(bins, fresh)
			return
		}
		if target.Place(r, false) {
			return
		}
	}
	r.X, r.Y = 0, 0
	(*binsPtr)[0].PlaceNoCheck(r)
}

// cleanup is τ≤0.001's final phase: strip every overlapping bin down to
// overlap-free, collect the removed "problem" rectangles, and reinsert
// each via ordinary checked placement, opening a new bin on failure.
func (on *OverlapNeighbourhood) cleanup(sol Solution, rng *RNG) []Solution {
	bins := on.cloneAsBins(sol)

	var problems []*Rectangle
	for _, b := range bins {
		for binTotalOverlap(b) > 0 {
			worst := pickWorstContributor(b)
			if worst == nil {
				break
			}
			b.Remove(worst)
			problems = append(problems, worst)
		}
	}

	// Unchecked stacking left anchors and grids stale; rebuild them so
	// the checked re-insertions below see the true occupancy.
	for _, b := range bins {
		b.reindex()
	}

	for _, r := range problems {
		if placeFirstFit(bins, r, true) {
			continue
		}
		r.Rotate()
		if placeFirstFit(bins, r, true) {
			continue
		}
		r.Rotate()
		fresh := NewBin(rng.NextID(), on.side)
		fresh.Place(r, true)
		bins = append(bins, fresh)
	}

	return []Solution{{Bins: binsToPacked(bins)}}
}

func pickWorstContributor(b *Bin) *Rectangle {
	var worst *Rectangle
	worstScore := 0
	for _, r := range b.Rectangles {
		if c := rectContribution(b, r); c > worstScore {
			worst, worstScore = r, c
		}
	}
	return worst
}

func (on *OverlapNeighbourhood) cloneAsBins(sol Solution) []*Bin {
	out := make([]*Bin, 0, len(sol.Bins))
	for _, b := range sol.Bins {
		out = append(out, b.(*Bin).Copy())
	}
	return out
}
