package world

import (
	"image"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/automoto/cavewing/shared/terrain"
	"github.com/automoto/cavewing/tags"
)

const cellSize = 16

// Space is the broadphase: every block and the craft live in one resolv space so the
// mask test only runs against blocks sharing grid cells with the craft.
type Space struct {
	space  *resolv.Space
	origin image.Point
	player *resolv.Object
}

// NewSpace covers area, which may start at negative coordinates.
func NewSpace(area image.Rectangle) *Space {
	s := &Space{
		space:  resolv.NewSpace(area.Dx(), area.Dy(), cellSize, cellSize),
		origin: area.Min,
	}
	s.player = s.object(image.Rect(0, 0, 1, 1), tags.ResolvPlayer)
	s.space.Add(s.player)
	return s
}

func (s *Space) object(r image.Rectangle, labels ...string) *resolv.Object {
	obj := resolv.NewObject(
		float64(r.Min.X-s.origin.X), float64(r.Min.Y-s.origin.Y),
		float64(r.Dx()), float64(r.Dy()),
		labels...,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(r.Dx()), float64(r.Dy())))
	return obj
}

// AddBlock registers a block rectangle under id.
func (s *Space) AddBlock(id terrain.BlockID, r image.Rectangle) {
	obj := s.object(r, tags.ResolvBlock)
	obj.Data = id
	s.space.Add(obj)
}

// Clear removes every block object; the craft object stays.
func (s *Space) Clear() {
	for _, obj := range s.space.Objects() {
		if obj.HasTags(tags.ResolvBlock) {
			s.space.Remove(obj)
		}
	}
}

// MovePlayer places the craft object over r.
func (s *Space) MovePlayer(r image.Rectangle) {
	s.player.X = float64(r.Min.X - s.origin.X)
	s.player.Y = float64(r.Min.Y - s.origin.Y)
	s.player.W = float64(r.Dx())
	s.player.H = float64(r.Dy())
	s.player.SetShape(resolv.NewRectangle(0, 0, s.player.W, s.player.H))
	s.player.Update()
}

// Candidates returns the ids of blocks sharing a cell with the craft, in ascending
// order. Cell neighbours are not necessarily touching the craft.
func (s *Space) Candidates() []terrain.BlockID {
	check := s.player.Check(0, 0, tags.ResolvBlock)
	if check == nil {
		return nil
	}
	ids := make([]terrain.BlockID, 0, len(check.Objects))
	for _, obj := range check.ObjectsByTags(tags.ResolvBlock) {
		if id, ok := obj.Data.(terrain.BlockID); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Rect converts a resolv object back into world coordinates.
func (s *Space) Rect(obj *resolv.Object) image.Rectangle {
	x := int(obj.X) + s.origin.X
	y := int(obj.Y) + s.origin.Y
	return image.Rect(x, y, x+int(obj.W), y+int(obj.H))
}

// Objects is every object in the space, for the debug overlay.
func (s *Space) Objects() []*resolv.Object {
	return s.space.Objects()
}
