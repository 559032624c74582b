package rectpack

import "encoding/json"

// WireRectangle is one placed rectangle in a solution's wire form.
type WireRectangle struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
	W  int    `json:"w"`
	H  int    `json:"h"`
}

// WireBin is one bin in a solution's wire form.
type WireBin struct {
	Rectangles []WireRectangle `json:"rectangles"`
}

// WireSolution is the serialisable form of a Solution for testing and
// logging: each bin lists its rectangles by id, anchor and dimensions,
// with the bin side echoed alongside.
type WireSolution struct {
	BinSide int       `json:"bin_side"`
	Bins    []WireBin `json:"bins"`
}

// ToWire converts sol into its wire form.
func ToWire(sol Solution) WireSolution {
	out := WireSolution{Bins: make([]WireBin, len(sol.Bins))}
	if len(sol.Bins) > 0 {
		out.BinSide = sol.Bins[0].SideLength()
	}
	for i, b := range sol.Bins {
		rects := b.Rects()
		wb := WireBin{Rectangles: make([]WireRectangle, len(rects))}
		for j, r := range rects {
			wb.Rectangles[j] = WireRectangle{
				ID: r.ID.String(),
				X:  r.X,
				Y:  r.Y,
				W:  r.Width,
				H:  r.Height,
			}
		}
		out.Bins[i] = wb
	}
	return out
}

// MarshalSolution renders sol's wire form as JSON.
func MarshalSolution(sol Solution) ([]byte, error) {
	return json.Marshal(ToWire(sol))
}
