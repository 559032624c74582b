// Package genutil generates synthetic packing instances for benchmarking
// and the CLI's "generate" subcommand. It is deliberately simple: a
// uniform random width and height per rectangle.
package genutil

import "github.com/aclarke/rectpack"

// GenerateInstance builds an Instance of numRectangles rectangles, each
// with width and height drawn independently and uniformly from
// [minDim, maxDim], using rng for both dimensions and rectangle identity.
func GenerateInstance(side, numRectangles, minDim, maxDim int, rng *rectpack.RNG) (*rectpack.Instance, error) {
	span := maxDim - minDim + 1

	rects := make([]*rectpack.Rectangle, numRectangles)
	for i := range rects {
		width := minDim + rng.Intn(span)
		height := minDim + rng.Intn(span)
		rects[i] = rectpack.NewRectangle(rng.NextID(), width, height)
	}

	return rectpack.NewInstance(side, minDim, maxDim, rects)
}
