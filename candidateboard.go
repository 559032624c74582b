package rectpack

import "sort"

// candidateEntry pairs a candidate solution with its fitness.
type candidateEntry struct {
	solution Solution
	score    float64
}

// candidateBoard keeps the top-capacity candidate solutions seen so far,
// highest score first. The geometry neighbourhood uses it to keep the
// best 30 of its many perturbed candidates.
type candidateBoard struct {
	capacity int
	entries  []candidateEntry
}

// newCandidateBoard creates a board that retains at most capacity entries.
func newCandidateBoard(capacity int) *candidateBoard {
	return &candidateBoard{capacity: capacity}
}

// Add inserts sol, scored with w, keeping the board sorted best-first and
// trimmed to capacity.
func (cb *candidateBoard) Add(sol Solution, w Weights) {
	cb.AddScored(sol, Score(sol, w))
}

// AddScored inserts sol with an already-computed score, for callers (the
// overlap neighbourhood) whose fitness isn't the plain composite Score.
func (cb *candidateBoard) AddScored(sol Solution, score float64) {
	cb.entries = append(cb.entries, candidateEntry{solution: sol, score: score})
	sort.Slice(cb.entries, func(i, j int) bool { return cb.entries[i].score > cb.entries[j].score })
	if cb.capacity > 0 && len(cb.entries) > cb.capacity {
		cb.entries = cb.entries[:cb.capacity]
	}
}

// Len reports the number of entries currently held.
func (cb *candidateBoard) Len() int { return len(cb.entries) }

// Best returns the highest-scoring candidate and true, or the zero value
// and false when the board is empty.
func (cb *candidateBoard) Best() (Solution, bool) {
	if len(cb.entries) == 0 {
		return Solution{}, false
	}
	return cb.entries[0].solution, true
}

// All returns every retained candidate, best first.
func (cb *candidateBoard) All() []Solution {
	out := make([]Solution, len(cb.entries))
	for i, e := range cb.entries {
		out[i] = e.solution
	}
	return out
}
