package rectpack

import (
	"fmt"
	"time"
)

// AlgorithmKind tags the variant an AlgorithmSpec selects. Pack
// dispatches on this tag instead of accepting an interface value, so
// callers choose an algorithm with plain data.
type AlgorithmKind int

const (
	AlgorithmGreedyArea AlgorithmKind = iota
	AlgorithmGreedyPerimeter
	AlgorithmSimAnneal
	AlgorithmBacktracking
	AlgorithmLocalSearchGeometry
	AlgorithmLocalSearchRule
	AlgorithmLocalSearchOverlap
)

func (k AlgorithmKind) String() string {
	switch k {
	case AlgorithmGreedyArea:
		return "greedy_area"
	case AlgorithmGreedyPerimeter:
		return "greedy_perimeter"
	case AlgorithmSimAnneal:
		return "sim_anneal"
	case AlgorithmBacktracking:
		return "backtracking"
	case AlgorithmLocalSearchGeometry:
		return "local_search_geometry"
	case AlgorithmLocalSearchRule:
		return "local_search_rule"
	case AlgorithmLocalSearchOverlap:
		return "local_search_overlap"
	default:
		return "unknown"
	}
}

// AlgorithmSpec selects an algorithm: a tag plus the parameters relevant
// to that tag. Fields irrelevant to Kind are ignored.
type AlgorithmSpec struct {
	Kind AlgorithmKind

	// sim_anneal
	InitialTemp float64
	CoolingRate float64

	// backtracking
	MaxTimeSeconds float64

	// local_search(overlap)
	MaxIterations int

	Weights Weights
}

// DefaultAlgorithmSpec returns a greedy_area spec with default weights.
func DefaultAlgorithmSpec() AlgorithmSpec {
	return AlgorithmSpec{Kind: AlgorithmGreedyArea, Weights: DefaultWeights()}
}

func (s AlgorithmSpec) weights() Weights {
	if s.Weights == (Weights{}) {
		return DefaultWeights()
	}
	return s.Weights
}

// Pack is the core's single packing entry point: it constructs the
// requested algorithm from spec and runs it to completion, seeding a
// fresh RNG from seed so results are reproducible.
func Pack(inst *Instance, spec AlgorithmSpec, seed int64) (Solution, error) {
	rng := NewRNG(seed)

	switch spec.Kind {
	case AlgorithmGreedyArea:
		return NewGreedy(OrderByArea).Pack(inst, rng), nil

	case AlgorithmGreedyPerimeter:
		return NewGreedy(OrderByPerimeter).Pack(inst, rng), nil

	case AlgorithmSimAnneal:
		sa := NewSimulatedAnnealing()
		if spec.InitialTemp > 0 {
			sa.InitialTemp = spec.InitialTemp
		}
		if spec.CoolingRate > 0 {
			sa.CoolingRate = spec.CoolingRate
		}
		sa.Weights = spec.weights()
		return sa.Pack(inst, rng), nil

	case AlgorithmBacktracking:
		bt := NewBacktracking()
		if spec.MaxTimeSeconds > 0 {
			bt.Deadline = time.Duration(spec.MaxTimeSeconds * float64(time.Second))
		}
		return bt.Pack(inst, rng), nil

	case AlgorithmLocalSearchGeometry:
		n := NewGeometryNeighbourhood()
		n.Weights = spec.weights()
		return NewLocalSearch(n).Pack(inst, rng), nil

	case AlgorithmLocalSearchRule:
		n := NewRuleNeighbourhood()
		n.Weights = spec.weights()
		return NewLocalSearch(n).Pack(inst, rng), nil

	case AlgorithmLocalSearchOverlap:
		n := NewOverlapNeighbourhood()
		n.Weights = spec.weights()
		if spec.MaxIterations > 0 {
			n.K = spec.MaxIterations
		}
		return NewLocalSearch(n).Pack(inst, rng), nil

	default:
		return Solution{}, fmt.Errorf("rectpack: unknown algorithm kind %v", spec.Kind)
	}
}
