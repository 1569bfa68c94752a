package mask

import "image"

// Component is one 8-connected region of set bits.
type Component struct {
	Rect  image.Rectangle
	Count int
}

// Components labels the 8-connected regions of m in scan order.
func (m *Mask) Components() []Component {
	if m.w == 0 || m.h == 0 {
		return nil
	}
	seen := New(m.w, m.h)
	var out []Component
	var stack []image.Point

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.Get(x, y) || seen.Get(x, y) {
				continue
			}
			c := Component{Rect: image.Rect(x, y, x+1, y+1)}
			seen.set(x, y)
			stack = append(stack[:0], image.Pt(x, y))
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				c.Count++
				c.Rect = c.Rect.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := p.X+dx, p.Y+dy
						if m.Get(nx, ny) && !seen.Get(nx, ny) {
							seen.set(nx, ny)
							stack = append(stack, image.Pt(nx, ny))
						}
					}
				}
			}
			out = append(out, c)
		}
	}
	return out
}

// BoundingRects returns the bounding rectangle of each connected component.
func (m *Mask) BoundingRects() []image.Rectangle {
	comps := m.Components()
	rects := make([]image.Rectangle, len(comps))
	for i, c := range comps {
		rects[i] = c.Rect
	}
	return rects
}

// LargestComponentRect returns the bounding rectangle of the component with the most
// pixels. ok is false when the mask is empty.
func (m *Mask) LargestComponentRect() (r image.Rectangle, ok bool) {
	best := -1
	for _, c := range m.Components() {
		if c.Count > best {
			best = c.Count
			r = c.Rect
		}
	}
	return r, best > 0
}
