package flight

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/automoto/cavewing/shared/mask"
)

// maskThreshold ignores the anti-aliased fringe of the rotated craft.
const maskThreshold = 127

// CraftImage rasterises the craft polygon, nose pointing along +x.
func CraftImage(w, h int, c color.RGBA) *image.RGBA {
	fw, fh := float32(w), float32(h)
	z := vector.NewRasterizer(w, h)
	z.MoveTo(0, 0)
	z.LineTo(fw, fh/2)
	z.LineTo(0, fh)
	z.LineTo(fw/4, fh/2)
	z.ClosePath()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	return img
}

// Sprite holds the rotated craft. The buffer is square and large enough for any angle;
// it is reused every frame, as is the mask.
type Sprite struct {
	src   *image.RGBA
	buf   *image.RGBA
	tight image.Rectangle // opaque-able area of buf at the current angle
	mask  *mask.Mask
	angle float64
	dirty bool
}

func NewSprite(src *image.RGBA) *Sprite {
	b := src.Bounds()
	side := int(math.Ceil(math.Hypot(float64(b.Dx()), float64(b.Dy())))) + 2
	s := &Sprite{
		src:   src,
		buf:   image.NewRGBA(image.Rect(0, 0, side, side)),
		mask:  mask.New(0, 0),
		dirty: true,
	}
	s.Rotate(0)
	return s
}

// SetSource swaps the unrotated image; the next Rotate redraws even at the same angle.
func (s *Sprite) SetSource(src *image.RGBA) {
	if src == s.src {
		return
	}
	s.src = src
	s.dirty = true
}

func (s *Sprite) Source() *image.RGBA {
	return s.src
}

// Rotate redraws the buffer with the source turned clockwise (screen space) by angle
// degrees, and rebuilds the mask. It does nothing if neither angle nor source changed.
func (s *Sprite) Rotate(angle float64) {
	if !s.dirty && angle == s.angle {
		return
	}
	s.angle = angle
	s.dirty = false

	clear(s.buf.Pix)
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)

	sb := s.src.Bounds()
	scx, scy := float64(sb.Min.X)+float64(sb.Dx())/2, float64(sb.Min.Y)+float64(sb.Dy())/2
	side := s.buf.Bounds().Dx()
	dc := float64(side) / 2

	m := f64.Aff3{
		cos, -sin, dc - (cos*scx - sin*scy),
		sin, cos, dc - (sin*scx + cos*scy),
	}
	draw.NearestNeighbor.Transform(s.buf, m, s.src, sb, draw.Src, nil)

	w, h := float64(sb.Dx()), float64(sb.Dy())
	bw := int(math.Ceil(math.Abs(w*cos)+math.Abs(h*sin))) + 2
	bh := int(math.Ceil(math.Abs(w*sin)+math.Abs(h*cos))) + 2
	bw, bh = min(bw, side), min(bh, side)
	s.tight = image.Rect(side/2-bw/2, side/2-bh/2, side/2-bw/2+bw, side/2-bh/2+bh)

	s.mask.SetFromImage(s.buf.SubImage(s.tight), maskThreshold)
}

// Image is the whole rotation buffer; the pointer never changes.
func (s *Sprite) Image() *image.RGBA {
	return s.buf
}

// Side is the edge length of the square buffer.
func (s *Sprite) Side() int {
	return s.buf.Bounds().Dx()
}

// Tight is the area of the buffer the rotated craft can cover, in buffer coordinates.
func (s *Sprite) Tight() image.Rectangle {
	return s.tight
}

// Mask matches Tight.
func (s *Sprite) Mask() *mask.Mask {
	return s.mask
}

func (s *Sprite) Angle() float64 {
	return s.angle
}
