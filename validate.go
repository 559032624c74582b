package rectpack

import (
	"fmt"
	"sort"
)

// Validate checks sol against inst for the packing invariants:
// every rectangle in bounds, no overlaps within a bin, and conservation of
// the input multiset of (w,h) pairs modulo rotation. It never panics; a
// malformed solution is reported as violations, not an error.
func Validate(inst *Instance, sol Solution) (ok bool, violations []string) {
	for bi, b := range sol.Bins {
		side := b.SideLength()
		rects := b.Rects()

		for _, r := range rects {
			if r.X < 0 || r.Y < 0 || r.X+r.Width > side || r.Y+r.Height > side {
				violations = append(violations, fmt.Sprintf("bin %d: rectangle %s out of bounds", bi, r.Label()))
			}
		}

		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				if pairOverlapArea(rects[i], rects[j]) > 0 {
					violations = append(violations, fmt.Sprintf("bin %d: rectangles %s and %s overlap", bi, rects[i].Label(), rects[j].Label()))
				}
			}
		}
	}

	if !sameMultiset(inst.Rectangles, allSolutionRects(sol)) {
		violations = append(violations, "solution does not conserve the input rectangle multiset")
	}

	return len(violations) == 0, violations
}

func allSolutionRects(sol Solution) []*Rectangle {
	var out []*Rectangle
	for _, b := range sol.Bins {
		out = append(out, b.Rects()...)
	}
	return out
}

// sameMultiset reports whether a and b contain the same (w,h) pairs up to
// rotation, ignoring order and identity.
func sameMultiset(a, b []*Rectangle) bool {
	if len(a) != len(b) {
		return false
	}
	key := func(r *Rectangle) [2]int {
		if r.Width <= r.Height {
			return [2]int{r.Width, r.Height}
		}
		return [2]int{r.Height, r.Width}
	}

	ak := make([][2]int, len(a))
	bk := make([][2]int, len(b))
	for i, r := range a {
		ak[i] = key(r)
	}
	for i, r := range b {
		bk[i] = key(r)
	}
	sort.Slice(ak, func(i, j int) bool { return less2(ak[i], ak[j]) })
	sort.Slice(bk, func(i, j int) bool { return less2(bk[i], bk[j]) })
	for i := range ak {
		if ak[i] != bk[i] {
			return false
		}
	}
	return true
}

func less2(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
