package rectpack

// This file is the scoring kit: pure, reentrant functions computing
// utilisation, compactness, contiguity and gap penalty over a Solution,
// plus a composite fitness combining them. None of it mutates its input.

// Weights configures the composite fitness in Score.
type Weights struct {
	NumBins      float64
	MinUtil      float64
	Compactness  float64
	IrregularGap float64
	Contiguity   float64
}

// DefaultWeights returns the default weight configuration.
func DefaultWeights() Weights {
	return Weights{NumBins: 1000, MinUtil: 150, Compactness: 100, IrregularGap: 100, Contiguity: 50}
}

// Utilisation returns (L² - F) / L² for a single bin.
func Utilisation(b PackedBin) float64 {
	area := b.SideLength() * b.SideLength()
	if area == 0 {
		return 0
	}
	return float64(area-b.FreeArea()) / float64(area)
}

// MinUtilisation returns the minimum utilisation across all bins in sol.
func MinUtilisation(sol Solution) float64 {
	if len(sol.Bins) == 0 {
		return 0
	}
	m := Utilisation(sol.Bins[0])
	for _, b := range sol.Bins[1:] {
		if u := Utilisation(b); u < m {
			m = u
		}
	}
	return m
}

// boundingBox returns the axis-aligned bounding box of rects: (width,
// height, area). ok is false when rects is empty.
func boundingBox(rects []*Rectangle) (width, height, area int, ok bool) {
	if len(rects) == 0 {
		return 0, 0, 0, false
	}
	xMin, yMin := rects[0].X, rects[0].Y
	xMax, yMax := rects[0].X+rects[0].Width, rects[0].Y+rects[0].Height
	for _, r := range rects[1:] {
		xMin = minInt(xMin, r.X)
		yMin = minInt(yMin, r.Y)
		xMax = maxInt(xMax, r.X+r.Width)
		yMax = maxInt(yMax, r.Y+r.Height)
	}
	width, height = xMax-xMin, yMax-yMin
	return width, height, width * height, true
}

func totalRectArea(rects []*Rectangle) int {
	total := 0
	for _, r := range rects {
		total += r.Area()
	}
	return total
}

// Compactness is Σ area(r) / bounding-box area for a bin's rectangles; 0
// when the bin is empty.
func Compactness(b PackedBin) float64 {
	rects := b.Rects()
	_, _, bboxArea, ok := boundingBox(rects)
	if !ok || bboxArea == 0 {
		return 0
	}
	return float64(totalRectArea(rects)) / float64(bboxArea)
}

// AverageCompactness returns the mean compactness over all bins in sol.
func AverageCompactness(sol Solution) float64 {
	if len(sol.Bins) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range sol.Bins {
		total += Compactness(b)
	}
	return total / float64(len(sol.Bins))
}

// Contiguity is the mean, over a bin's rectangles, of the fraction of that
// rectangle's four edges flush with a bin edge.
func Contiguity(b PackedBin) float64 {
	rects := b.Rects()
	if len(rects) == 0 {
		return 0
	}
	side := b.SideLength()
	total := 0.0
	for _, r := range rects {
		contacts := 0
		if r.X == 0 {
			contacts++
		}
		if r.Y == 0 {
			contacts++
		}
		if r.X+r.Width == side {
			contacts++
		}
		if r.Y+r.Height == side {
			contacts++
		}
		total += float64(contacts) / 4
	}
	return total / float64(len(rects))
}

// AverageContiguity returns the mean contiguity over all bins in sol.
func AverageContiguity(sol Solution) float64 {
	if len(sol.Bins) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range sol.Bins {
		total += Contiguity(b)
	}
	return total / float64(len(sol.Bins))
}

// IrregularGap is (bboxArea - Σ area(r)) / bboxArea for a bin; 0 when
// empty.
func IrregularGap(b PackedBin) float64 {
	rects := b.Rects()
	_, _, bboxArea, ok := boundingBox(rects)
	if !ok || bboxArea == 0 {
		return 0
	}
	return float64(bboxArea-totalRectArea(rects)) / float64(bboxArea)
}

// AverageIrregularGap returns the mean irregular-gap penalty over all bins
// in sol.
func AverageIrregularGap(sol Solution) float64 {
	if len(sol.Bins) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range sol.Bins {
		total += IrregularGap(b)
	}
	return total / float64(len(sol.Bins))
}

// Score computes the composite fitness: higher is better.
//
//	score = -W_nb*|sol| + W_mu*min_util + W_cp*avg_compact
//	        - W_ig*avg_gap + W_ct*avg_contig
func Score(sol Solution, w Weights) float64 {
	return -w.NumBins*float64(sol.NumBins()) +
		w.MinUtil*MinUtilisation(sol) +
		w.Compactness*AverageCompactness(sol) -
		w.IrregularGap*AverageIrregularGap(sol) +
		w.Contiguity*AverageContiguity(sol)
}
