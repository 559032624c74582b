package rectpack

// GapFitFunc scores how well a rectangle fits a shelf gap, given the
// gap's width, the hosting shelf's height and vertical start, and the
// rectangle's dimensions. Lower scores are better fits. ShelfBin's
// best-fit mode uses one of these to pick among all open gaps.
type GapFitFunc func(gapWidth, shelfHeight, shelfY, rectWidth, rectHeight int) int

// BestShortSideFitGap scores a gap by the smaller of its horizontal and
// vertical leftover after placing the rectangle.
func BestShortSideFitGap(gapWidth, shelfHeight, shelfY, rectWidth, rectHeight int) int {
	leftoverW := gapWidth - rectWidth
	leftoverH := shelfHeight - rectHeight
	return minInt(leftoverW, leftoverH)
}

// BestLongSideFitGap scores a gap by the larger of its horizontal and
// vertical leftover after placing the rectangle.
func BestLongSideFitGap(gapWidth, shelfHeight, shelfY, rectWidth, rectHeight int) int {
	leftoverW := gapWidth - rectWidth
	leftoverH := shelfHeight - rectHeight
	return maxInt(leftoverW, leftoverH)
}

// BestAreaFitGap scores a gap by the free area left in it after placing
// the rectangle.
func BestAreaFitGap(gapWidth, shelfHeight, shelfY, rectWidth, rectHeight int) int {
	return gapWidth*shelfHeight - rectWidth*rectHeight
}

// BottomLeftGap scores a gap by the resulting top edge of the placed
// rectangle, preferring the lowest shelf that can hold it.
func BottomLeftGap(gapWidth, shelfHeight, shelfY, rectWidth, rectHeight int) int {
	return shelfY + rectHeight
}
