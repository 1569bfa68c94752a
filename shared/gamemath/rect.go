package gamemath

import "image"

// Inflate grows r by dx in total width and dy in total height, keeping its centre.
// Negative values shrink it.
func Inflate(r image.Rectangle, dx, dy int) image.Rectangle {
	return image.Rect(
		r.Min.X-dx/2,
		r.Min.Y-dy/2,
		r.Max.X+dx-dx/2,
		r.Max.Y+dy-dy/2,
	)
}

// RectAt returns a w*h rectangle with its top-left at (x, y).
func RectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// CenteredRect returns a w*h rectangle centred on c.
func CenteredRect(c image.Point, w, h int) image.Rectangle {
	return RectAt(c.X-w/2, c.Y-h/2, w, h)
}

// Contains reports whether inner lies fully inside outer. Empty rectangles are
// treated by their coordinates, not as the empty set.
func Contains(outer, inner image.Rectangle) bool {
	return inner.Min.X >= outer.Min.X && inner.Min.Y >= outer.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}

// ClampPoint moves p into r, keeping a w*h box centred on p inside r where possible.
func ClampPoint(p image.Point, r image.Rectangle, w, h int) image.Point {
	return image.Point{
		X: ClampInt(p.X, r.Min.X+w/2, r.Max.X-(w-w/2)),
		Y: ClampInt(p.Y, r.Min.Y+h/2, r.Max.Y-(h-h/2)),
	}
}
