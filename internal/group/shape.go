package group

import (
	"sort"

	"fyne.io/fyne/v2"
)

// Rect is an axis aligned rectangle in canvas units (frames horizontally,
// pixels vertically).
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a rectangle from its origin and extent
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Position returns the top-left corner
func (r Rect) Position() fyne.Position { return fyne.NewPos(r.X, r.Y) }

// Size returns the extent
func (r Rect) Size() fyne.Size { return fyne.NewSize(r.Width, r.Height) }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside the rectangle (right and bottom edges excluded)
func (r Rect) Contains(p fyne.Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translated returns the rectangle moved by dx, dy
func (r Rect) Translated(dx, dy float32) Rect {
	return NewRect(r.X+dx, r.Y+dy, r.Width, r.Height)
}

// Shape is a rectilinear region stored as disjoint rectangles in a canonical
// order, so two shapes covering the same area compare equal whatever order
// their parts were added in.
type Shape struct {
	rects  []Rect
	bounds Rect
}

// Union builds the shape covering every non-empty rectangle in rects.
func Union(rects ...Rect) Shape {
	var parts []Rect
	var ys []float32
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		parts = append(parts, r)
		ys = append(ys, r.Y, r.Bottom())
	}
	if len(parts) == 0 {
		return Shape{}
	}
	ys = uniqueSorted(ys)

	type band struct {
		top, bottom float32
		spans       [][2]float32
	}
	var bands []band
	for i := 0; i+1 < len(ys); i++ {
		top, bottom := ys[i], ys[i+1]
		var spans [][2]float32
		for _, r := range parts {
			if r.Y <= top && r.Bottom() >= bottom {
				spans = append(spans, [2]float32{r.X, r.Right()})
			}
		}
		spans = mergeSpans(spans)
		if len(spans) == 0 {
			continue
		}
		if n := len(bands); n > 0 && bands[n-1].bottom == top && equalSpans(bands[n-1].spans, spans) {
			bands[n-1].bottom = bottom
			continue
		}
		bands = append(bands, band{top: top, bottom: bottom, spans: spans})
	}

	s := Shape{}
	minX, maxX := bands[0].spans[0][0], bands[0].spans[0][1]
	for _, b := range bands {
		for _, sp := range b.spans {
			s.rects = append(s.rects, NewRect(sp[0], b.top, sp[1]-sp[0], b.bottom-b.top))
			minX = min(minX, sp[0])
			maxX = max(maxX, sp[1])
		}
	}
	top, bottom := bands[0].top, bands[len(bands)-1].bottom
	s.bounds = NewRect(minX, top, maxX-minX, bottom-top)
	return s
}

// Empty reports whether the shape covers no area
func (s Shape) Empty() bool { return len(s.rects) == 0 }

// Bounds returns the smallest rectangle containing the shape
func (s Shape) Bounds() Rect { return s.bounds }

// Rects returns the disjoint rectangles making up the shape
func (s Shape) Rects() []Rect {
	out := make([]Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// Contains reports whether p lies inside the shape
func (s Shape) Contains(p fyne.Position) bool {
	if !s.bounds.Contains(p) {
		return false
	}
	for _, r := range s.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Area returns the covered area
func (s Shape) Area() float32 {
	var a float32
	for _, r := range s.rects {
		a += r.Width * r.Height
	}
	return a
}

// Equal reports whether both shapes cover the same region
func (s Shape) Equal(other Shape) bool {
	if len(s.rects) != len(other.rects) {
		return false
	}
	for i := range s.rects {
		if s.rects[i] != other.rects[i] {
			return false
		}
	}
	return true
}

func uniqueSorted(vs []float32) []float32 {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	out := vs[:0]
	for i, v := range vs {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// mergeSpans sorts spans and joins the ones that overlap or touch.
func mergeSpans(spans [][2]float32) [][2]float32 {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	merged := [][2]float32{spans[0]}
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp[0] <= last[1] {
			last[1] = max(last[1], sp[1])
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func equalSpans(a, b [][2]float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
