// Package mask implements pixel masks used for pixel-precise collision: a mask is the
// set of opaque pixels of an image.
package mask

import (
	"image"
	"image/color"
	"math/bits"
)

// Mask is a w*h bitset stored row-major in 64-bit words.
type Mask struct {
	w, h   int
	stride int
	bits   []uint64
}

func New(w, h int) *Mask {
	m := &Mask{}
	m.Reset(w, h)
	return m
}

// Reset resizes the mask to w*h and clears it, reusing the backing storage when it is
// large enough.
func (m *Mask) Reset(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.w, m.h = w, h
	m.stride = (w + 63) / 64
	n := m.stride * h
	if cap(m.bits) >= n {
		m.bits = m.bits[:n]
		clear(m.bits)
		return
	}
	m.bits = make([]uint64, n)
}

// FromImage builds a mask where every pixel with alpha > threshold is set.
func FromImage(img image.Image, threshold uint8) *Mask {
	m := &Mask{}
	m.SetFromImage(img, threshold)
	return m
}

// SetFromImage rebuilds m from img, reusing m's storage.
func (m *Mask) SetFromImage(img image.Image, threshold uint8) {
	b := img.Bounds()
	m.Reset(b.Dx(), b.Dy())

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < m.h; y++ {
			row := rgba.Pix[(b.Min.Y+y-rgba.Rect.Min.Y)*rgba.Stride+(b.Min.X-rgba.Rect.Min.X)*4:]
			for x := 0; x < m.w; x++ {
				if row[x*4+3] > threshold {
					m.set(x, y)
				}
			}
		}
		return
	}

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			a := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA).A
			if a > threshold {
				m.set(x, y)
			}
		}
	}
}

// Fill returns a w*h mask with every bit set.
func Fill(w, h int) *Mask {
	m := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.set(x, y)
		}
	}
	return m
}

func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.w, m.h)
}

// Get reports whether (x, y) is set. Out-of-range coordinates are unset.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x>>6]&(1<<(uint(x)&63)) != 0
}

// Set sets or clears (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	if on {
		m.set(x, y)
		return
	}
	m.bits[y*m.stride+x>>6] &^= 1 << (uint(x) & 63)
}

func (m *Mask) set(x, y int) {
	m.bits[y*m.stride+x>>6] |= 1 << (uint(x) & 63)
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// overlapRange returns the region of m's frame shared with other placed at offset.
func (m *Mask) overlapRange(other *Mask, offset image.Point) image.Rectangle {
	return m.Bounds().Intersect(other.Bounds().Add(offset))
}

// Overlap reports whether any set bit of m coincides with a set bit of other, where
// offset is other's top-left relative to m's top-left.
func (m *Mask) Overlap(other *Mask, offset image.Point) bool {
	r := m.overlapRange(other, offset)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.Get(x, y) && other.Get(x-offset.X, y-offset.Y) {
				return true
			}
		}
	}
	return false
}

// OverlapMask returns a mask the size of m holding the bits set in both m and other.
func (m *Mask) OverlapMask(other *Mask, offset image.Point) *Mask {
	dst := &Mask{}
	m.OverlapMaskInto(dst, other, offset)
	return dst
}

// OverlapMaskInto writes the overlap of m and other into dst, resizing dst to m's size.
func (m *Mask) OverlapMaskInto(dst *Mask, other *Mask, offset image.Point) {
	dst.Reset(m.w, m.h)
	m.OrOverlapInto(dst, other, offset)
}

// OrOverlapInto adds the overlap of m and other to dst, which must be m's size.
func (m *Mask) OrOverlapInto(dst *Mask, other *Mask, offset image.Point) {
	r := m.overlapRange(other, offset)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.Get(x, y) && other.Get(x-offset.X, y-offset.Y) {
				dst.set(x, y)
			}
		}
	}
}

// Centroid returns the mean position of the set bits. ok is false for an empty mask.
func (m *Mask) Centroid() (p image.Point, ok bool) {
	var sx, sy, n int
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Get(x, y) {
				sx += x
				sy += y
				n++
			}
		}
	}
	if n == 0 {
		return image.Point{}, false
	}
	return image.Pt(sx/n, sy/n), true
}

// Draw paints every set bit of m onto dst at the given top-left with colour c.
func (m *Mask) Draw(dst *image.RGBA, at image.Point, c color.RGBA) {
	clip := dst.Bounds()
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.Get(x, y) {
				continue
			}
			p := image.Pt(at.X+x, at.Y+y)
			if p.In(clip) {
				dst.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}
