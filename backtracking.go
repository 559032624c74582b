package rectpack

import "time"

// Backtracking is a bounded depth-first search: it takes a greedy-area
// upper bound and a wall-clock deadline, prunes any branch that has
// already reached the bound, and restricts branching to the first bin
// admitting the current rectangle, keeping the tree tractable at the
// cost of completeness.
type Backtracking struct {
	Deadline  time.Duration
	Randomize bool
}

// NewBacktracking creates a Backtracking run with the default 240s
// deadline.
func NewBacktracking() *Backtracking {
	return &Backtracking{Deadline: 240 * time.Second}
}

type backtrackState struct {
	rects     []*Rectangle
	deadline  time.Time
	ub        int
	bestScore int
	best      []*Bin
}

// Pack runs the bounded search over inst and returns the best incumbent
// found, or the greedy starting solution if none was recorded (an
// immediately-expired deadline, for instance).
func (bt *Backtracking) Pack(inst *Instance, rng *RNG) Solution {
	greedy := NewGreedy(OrderByArea)
	fallback := greedy.Pack(inst, rng)
	ub := fallback.NumBins()

	rects := inst.OrderedRectangles()
	if bt.Randomize {
		rects = inst.RandomRectangles(rng)
	}

	st := &backtrackState{
		rects:     rects,
		deadline:  time.Now().Add(bt.Deadline),
		ub:        ub,
		bestScore: ub + 1,
	}
	st.search(0, nil, inst.Side, rng)

	if st.best == nil {
		return fallback
	}
	return Solution{Bins: binsToPacked(st.best)}
}

func (st *backtrackState) search(i int, bins []*Bin, side int, rng *RNG) {
	if len(bins) >= st.ub {
		return
	}
	if time.Now().After(st.deadline) {
		return
	}
	if i == len(st.rects) {
		if len(bins) < st.bestScore {
			st.bestScore = len(bins)
			st.best = copyBinSlice(bins)
		}
		return
	}

	r := st.rects[i]

	for _, b := range bins {
		if b.Place(r, true) {
			st.search(i+1, copyBinSlice(bins), side, rng)
			b.Remove(r)
			return
		}
	}

	fresh := NewBin(rng.NextID(), side)
	fresh.Place(r, true)
	bins = append(bins, fresh)
	st.search(i+1, copyBinSlice(bins), side, rng)
}

func copyBinSlice(bins []*Bin) []*Bin {
	out := make([]*Bin, len(bins))
	for i, b := range bins {
		out[i] = b.Copy()
	}
	return out
}
