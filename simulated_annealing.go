package rectpack

import "math"

// SimulatedAnnealing is a temperature-driven perturbation search. It
// starts from a Greedy-by-area solution and repeatedly relocates a
// single rectangle, accepting worse candidates with Metropolis probability
// exp(-Δ/T) while tracking the best solution ever seen.
type SimulatedAnnealing struct {
	InitialTemp float64
	CoolingRate float64
	Weights     Weights
}

// NewSimulatedAnnealing creates a SimulatedAnnealing run with the
// defaults T0=1000, cooling rate 0.99.
func NewSimulatedAnnealing() *SimulatedAnnealing {
	return &SimulatedAnnealing{InitialTemp: 1000, CoolingRate: 0.99, Weights: DefaultWeights()}
}

const temperatureFloor = 1e-6

// Pack runs the annealing loop over inst, capping iterations at N (the
// rectangle count) and stopping early once temperature drops below the
// floor.
func (sa *SimulatedAnnealing) Pack(inst *Instance, rng *RNG) Solution {
	greedy := NewGreedy(OrderByArea)
	current := greedy.Pack(inst, rng)
	currentScore := Score(current, sa.Weights)

	best := current
	bestScore := currentScore

	n := inst.NumRectangles()
	temp := sa.InitialTemp
	for iter := 0; iter < n && temp >= temperatureFloor; iter++ {
		candidate, ok := sa.perturb(current, rng)
		if !ok {
			temp *= sa.CoolingRate
			continue
		}
		candidateScore := Score(candidate, sa.Weights)
		delta := currentScore - candidateScore

		if delta < 0 || rng.Float64() < math.Exp(-delta/temp) {
			current, currentScore = candidate, candidateScore
			if currentScore > bestScore {
				best, bestScore = current, currentScore
			}
		}
		temp *= sa.CoolingRate
	}

	return best
}

// perturb clones sol's bin list, removes a random rectangle from a random
// non-empty bin, optionally rotates it, and reinserts it via first-fit
// across all bins. On reinsertion failure the rotation is reverted and one
// retry is attempted; if that also fails, ok is false and sol is
// untouched.
func (sa *SimulatedAnnealing) perturb(sol Solution, rng *RNG) (Solution, bool) {
	bins := cloneBins(sol)
	if len(bins) == 0 {
		return sol, false
	}

	nonEmpty := make([]int, 0, len(bins))
	for i, b := range bins {
		if len(b.Rectangles) > 0 {
			nonEmpty = append(nonEmpty, i)
		}
	}
	if len(nonEmpty) == 0 {
		return sol, false
	}

	srcIdx := nonEmpty[rng.Intn(len(nonEmpty))]
	src := bins[srcIdx]
	rIdx := rng.Intn(len(src.Rectangles))
	r := src.Rectangles[rIdx]
	src.Remove(r)

	rotated := rng.Float64() < 0.5
	if rotated {
		r.Rotate()
	}
	if placeFirstFit(bins, r, true) {
		return Solution{Bins: binsToPacked(bins)}, true
	}

	if rotated {
		r.Rotate()
	}
	if placeFirstFit(bins, r, true) {
		return Solution{Bins: binsToPacked(bins)}, true
	}

	return sol, false
}

// cloneBins deep-copies sol's bins, which must all be *Bin for SA's
// reversible-placement needs.
func cloneBins(sol Solution) []*Bin {
	out := make([]*Bin, len(sol.Bins))
	for i, b := range sol.Bins {
		out[i] = b.(*Bin).Copy()
	}
	return out
}

// placeFirstFit tries r against each bin in order; it never opens a new
// bin, so a relocation only redistributes across the existing bin list.
func placeFirstFit(bins []*Bin, r *Rectangle, check bool) bool {
	for _, b := range bins {
		if b.Place(r, check) {
			return true
		}
	}
	return false
}
