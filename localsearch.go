package rectpack

// Neighbourhood is the capability record a local search runs over: start
// produces the initial solution, neighbours produces candidate
// successors ranked best-first, and score rates a solution (distinct
// from the plain composite Score since the overlap neighbourhood layers
// a penalty on top of it).
type Neighbourhood interface {
	start(inst *Instance, rng *RNG) Solution
	neighbours(sol Solution, rng *RNG) []Solution
	score(sol Solution) float64
	// exhausted reports whether the neighbourhood's own iteration budget
	// has been used up. Only the overlap neighbourhood returns false here
	// for more than one call; the local search driver uses it to force a
	// final iteration.
	exhausted() bool
}

// LocalSearch is the generic iterative-improvement driver: it
// repeatedly asks the neighbourhood for ranked candidates and accepts the
// top-ranked one whenever it strictly improves on the current solution,
// stopping when no candidates are produced or no improvement is found.
// The exception is a neighbourhood with an unspent iteration budget,
// which keeps getting rounds until that budget runs out.
type LocalSearch struct {
	N Neighbourhood
}

// NewLocalSearch wraps a Neighbourhood for driving.
func NewLocalSearch(n Neighbourhood) *LocalSearch {
	return &LocalSearch{N: n}
}

// Pack runs the driver loop to completion and returns the final solution.
func (ls *LocalSearch) Pack(inst *Instance, rng *RNG) Solution {
	current := ls.N.start(inst, rng)
	currentScore := ls.N.score(current)

	for {
		candidates := ls.N.neighbours(current, rng)
		if len(candidates) == 0 {
			return current
		}

		best := candidates[0]
		bestScore := ls.N.score(best)

		if bestScore > currentScore {
			current, currentScore = best, bestScore
			continue
		}

		if !ls.N.exhausted() {
			current, currentScore = best, bestScore
			continue
		}

		return current
	}
}
