package systems

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface lets the map draw onto the screen. Images handed to Blit are uploaded
// once and cached; volatile images are re-uploaded on every blit and dropped once a
// frame passes without them.
type EbitenSurface struct {
	screen   *ebiten.Image
	static   map[*image.RGBA]*ebiten.Image
	volatile map[*image.RGBA]*volatileImage
	frame    int
	op       ebiten.DrawImageOptions
}

type volatileImage struct {
	img   *ebiten.Image
	frame int // last frame it was blitted
}

func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		static:   make(map[*image.RGBA]*ebiten.Image),
		volatile: make(map[*image.RGBA]*volatileImage),
	}
}

// Target starts a frame drawn onto screen. Volatile images not blitted during the
// previous frame are freed.
func (s *EbitenSurface) Target(screen *ebiten.Image) {
	s.screen = screen
	for src, v := range s.volatile {
		if v.frame < s.frame {
			v.img.Deallocate()
			delete(s.volatile, src)
		}
	}
	s.frame++
}

func (s *EbitenSurface) Bounds() image.Rectangle {
	if s.screen == nil {
		return image.Rectangle{}
	}
	return s.screen.Bounds()
}

func (s *EbitenSurface) Fill(c color.RGBA, r image.Rectangle) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	vector.FillRect(s.screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (s *EbitenSurface) Blit(src *image.RGBA, at image.Point) {
	img, ok := s.static[src]
	if !ok {
		img = ebiten.NewImageFromImage(src)
		s.static[src] = img
	}
	s.draw(img, at)
}

func (s *EbitenSurface) BlitVolatile(src *image.RGBA, at image.Point) {
	b := src.Bounds()
	v, ok := s.volatile[src]
	if !ok {
		v = &volatileImage{}
		s.volatile[src] = v
	}
	if v.img == nil || v.img.Bounds().Dx() != b.Dx() || v.img.Bounds().Dy() != b.Dy() {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	v.frame = s.frame
	v.img.WritePixels(packed(src))
	s.draw(v.img, at)
}

// packed returns src's pixels without stride padding, as WritePixels expects.
func packed(src *image.RGBA) []byte {
	b := src.Bounds()
	if src.Stride == 4*b.Dx() && src.PixOffset(b.Min.X, b.Min.Y) == 0 {
		return src.Pix[:4*b.Dx()*b.Dy()]
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst.Pix
}

func (s *EbitenSurface) draw(img *ebiten.Image, at image.Point) {
	if s.screen == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.screen.DrawImage(img, &s.op)
}

// Release frees every cached GPU image.
func (s *EbitenSurface) Release() {
	for src, img := range s.static {
		img.Deallocate()
		delete(s.static, src)
	}
	for src, v := range s.volatile {
		v.img.Deallocate()
		delete(s.volatile, src)
	}
}
