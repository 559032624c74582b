package rectpack

import "sort"

// RuleNeighbourhood keeps a permutation π of the
// instance's rectangles as its state, rebuilding the whole bin list from
// scratch via ShelfBin first-fit whenever π changes.
type RuleNeighbourhood struct {
	Weights Weights
	pi      []*Rectangle
	side    int
}

// NewRuleNeighbourhood creates a RuleNeighbourhood using the default
// composite weights.
func NewRuleNeighbourhood() *RuleNeighbourhood {
	return &RuleNeighbourhood{Weights: DefaultWeights()}
}

// shelfPack rebuilds a fresh solution from order by first-fitting copies
// of each rectangle into ShelfBins, so earlier candidate snapshots are
// never disturbed by a later rebuild.
func shelfPack(order []*Rectangle, side int, rng *RNG) Solution {
	var bins []*ShelfBin
	for _, orig := range order {
		r := orig.Copy()
		placed := false
		for _, b := range bins {
			if b.Place(r) {
				placed = true
				break
			}
		}
		if !placed {
			nb := NewShelfBin(rng.NextID(), side)
			nb.Place(r)
			bins = append(bins, nb)
		}
	}
	out := make([]PackedBin, len(bins))
	for i, b := range bins {
		out[i] = b
	}
	return Solution{Bins: out}
}

func (rn *RuleNeighbourhood) start(inst *Instance, rng *RNG) Solution {
	rn.side = inst.Side
	ordered := make([]*Rectangle, len(inst.Rectangles))
	copy(ordered, inst.Rectangles)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Area() > ordered[j].Area() })
	rn.pi = ordered
	return shelfPack(rn.pi, rn.side, rng)
}

// sectionSwaps returns up to 6 orderings, each swapping one pair of the 4
// roughly-equal sections π is divided into.
func sectionSwaps(pi []*Rectangle) [][]*Rectangle {
	n := len(pi)
	if n < 2 {
		return nil
	}
	bounds := [5]int{0, n / 4, n / 2, (3 * n) / 4, n}

	var out [][]*Rectangle
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			si, ei := bounds[i], bounds[i+1]
			sj, ej := bounds[j], bounds[j+1]
			if si == ei || sj == ej {
				continue
			}
			cand := append([]*Rectangle{}, pi...)
			sectionI := append([]*Rectangle{}, cand[si:ei]...)
			sectionJ := append([]*Rectangle{}, cand[sj:ej]...)
			rebuilt := make([]*Rectangle, 0, n)
			rebuilt = append(rebuilt, cand[:si]...)
			rebuilt = append(rebuilt, sectionJ...)
			rebuilt = append(rebuilt, cand[ei:sj]...)
			rebuilt = append(rebuilt, sectionI...)
			rebuilt = append(rebuilt, cand[ej:]...)
			out = append(out, rebuilt)
		}
	}
	return out
}

// adjacentSwaps returns up to 10 orderings, each swapping one randomly
// chosen adjacent pair in π.
func adjacentSwaps(pi []*Rectangle, rng *RNG) [][]*Rectangle {
	n := len(pi)
	if n < 2 {
		return nil
	}
	const maxSwaps = 10
	out := make([][]*Rectangle, 0, maxSwaps)
	for i := 0; i < maxSwaps; i++ {
		idx := rng.Intn(n - 1)
		cand := append([]*Rectangle{}, pi...)
		cand[idx], cand[idx+1] = cand[idx+1], cand[idx]
		out = append(out, cand)
	}
	return out
}

func (rn *RuleNeighbourhood) candidateOrderings(rng *RNG) [][]*Rectangle {
	out := sectionSwaps(rn.pi)
	out = append(out, adjacentSwaps(rn.pi, rng)...)
	return out
}

// neighbours rebuilds a ShelfBin packing for every candidate ordering and
// returns a single-element slice containing only the best one, provided it
// strictly improves on sol; otherwise it returns no neighbours, which the
// driver reads as convergence.
func (rn *RuleNeighbourhood) neighbours(sol Solution, rng *RNG) []Solution {
	currentScore := Score(sol, rn.Weights)

	var bestOrder []*Rectangle
	var best Solution
	bestScore := currentScore
	found := false

	for _, order := range rn.candidateOrderings(rng) {
		cand := shelfPack(order, rn.side, rng)
		if s := Score(cand, rn.Weights); s > bestScore {
			bestScore, best, bestOrder, found = s, cand, order, true
		}
	}

	if !found {
		return nil
	}
	rn.pi = bestOrder
	return []Solution{best}
}

func (rn *RuleNeighbourhood) score(sol Solution) float64 {
	return Score(sol, rn.Weights)
}

func (rn *RuleNeighbourhood) exhausted() bool {
	return true
}
