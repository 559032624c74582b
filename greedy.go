package rectpack

import "sort"

// OrderBy selects how Greedy sorts rectangles before placement.
type OrderBy int

const (
	// OrderByArea sorts rectangles by descending area (the default).
	OrderByArea OrderBy = iota
	// OrderByPerimeter sorts rectangles by descending perimeter.
	OrderByPerimeter
)

// Greedy is a first-fit-decreasing packer: rectangles are sorted
// largest-first, then each is placed into the first open bin it fits
// in, opening a fresh bin only when none of the existing ones will take
// it. Each Bin.Place performs the within-bin insertion-point search
// internally via its anchor set.
type Greedy struct {
	OrderBy OrderBy
}

// NewGreedy creates a Greedy packer using the given ordering.
func NewGreedy(order OrderBy) *Greedy {
	return &Greedy{OrderBy: order}
}

// orderedCopy returns independent copies of rects sorted per g.OrderBy,
// descending, so placement mutates the copies rather than the caller's
// rectangles.
func (g *Greedy) orderedCopy(rects []*Rectangle) []*Rectangle {
	out := make([]*Rectangle, len(rects))
	for i, r := range rects {
		out[i] = r.Copy()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return g.key(out[i]) > g.key(out[j])
	})
	return out
}

func (g *Greedy) key(r *Rectangle) int {
	if g.OrderBy == OrderByPerimeter {
		return 2 * (r.Width + r.Height)
	}
	return r.Area()
}

// Pack runs first-fit-decreasing over inst's rectangles, opening bins of
// side inst.Side as needed, and returns the resulting Solution.
func (g *Greedy) Pack(inst *Instance, rng *RNG) Solution {
	ordered := g.orderedCopy(inst.Rectangles)

	var bins []*Bin
	for _, r := range ordered {
		placed := false
		for _, b := range bins {
			if b.Place(r, true) {
				placed = true
				break
			}
		}
		if !placed {
			nb := NewBin(rng.NextID(), inst.Side)
			nb.Place(r, true)
			bins = append(bins, nb)
		}
	}

	return Solution{Bins: binsToPacked(bins)}
}
