package rectpack

import "github.com/google/uuid"

// PackedBin is the common read surface scoring and validation need from a
// bin, whether it is the anchor-based Bin or the monotone ShelfBin.
type PackedBin interface {
	SideLength() int
	Rects() []*Rectangle
	FreeArea() int
}

// Solution is an ordered list of bins. Bin order is observable: the
// geometry neighbourhood walks source bins starting from the last one.
// Score does not depend on bin order.
type Solution struct {
	Bins []PackedBin
}

// NumBins returns the bin count, the dominant term of the fitness score.
func (s Solution) NumBins() int { return len(s.Bins) }

// Instance is an immutable packing problem: a bin side length and a fixed
// list of rectangles. The accessors hand out independent copies, so
// placement never touches the instance's own rectangles.
type Instance struct {
	Side       int
	MinDim     int
	MaxDim     int
	Rectangles []*Rectangle
}

// NewInstance validates and constructs an Instance. It refuses with an
// InstanceError rather than panicking: L<1, min>max, or any rectangle
// too large for the bin.
func NewInstance(side, minDim, maxDim int, rectangles []*Rectangle) (*Instance, error) {
	if side < 1 {
		return nil, &InstanceError{Kind: ErrBinSide, Message: "bin_side must be >= 1"}
	}
	if minDim < 1 || minDim > maxDim {
		return nil, &InstanceError{Kind: ErrDimRange, Message: "min_dim must be >= 1 and <= max_dim"}
	}
	if maxDim > side {
		return nil, &InstanceError{Kind: ErrDimRange, Message: "max_dim must be <= bin_side"}
	}
	for _, r := range rectangles {
		if r.Width < 1 || r.Height < 1 {
			return nil, &InstanceError{Kind: ErrRectangle, Message: "rectangle dimensions must be positive"}
		}
		if r.Width > side || r.Height > side {
			return nil, &InstanceError{Kind: ErrRectangle, Message: "rectangle " + r.Label() + " does not fit in any bin"}
		}
	}
	return &Instance{Side: side, MinDim: minDim, MaxDim: maxDim, Rectangles: rectangles}, nil
}

// OrderedRectangles returns independent copies of the instance's
// rectangles in their original order, safe for an algorithm to place
// and rotate.
func (i *Instance) OrderedRectangles() []*Rectangle {
	out := make([]*Rectangle, len(i.Rectangles))
	for idx, r := range i.Rectangles {
		out[idx] = r.Copy()
	}
	return out
}

// RandomRectangles returns independent copies of the instance's
// rectangles in a random permutation, consuming rng. Backtracking uses
// it to diversify the visit order across restarts.
func (i *Instance) RandomRectangles(rng *RNG) []*Rectangle {
	perm := rng.Perm(len(i.Rectangles))
	out := make([]*Rectangle, len(i.Rectangles))
	for idx, p := range perm {
		out[idx] = i.Rectangles[p].Copy()
	}
	return out
}

// NumRectangles returns N.
func (i *Instance) NumRectangles() int { return len(i.Rectangles) }

// Warning reports a non-fatal event encountered mid-algorithm, such as
// an oversize rectangle being skipped.
type Warning struct {
	RectangleID uuid.UUID
	Message     string
}

// binsToPacked adapts a []*Bin into the []PackedBin a Solution holds.
func binsToPacked(bins []*Bin) []PackedBin {
	out := make([]PackedBin, len(bins))
	for i, b := range bins {
		out[i] = b
	}
	return out
}
