package math3d

// Vec2 is a point in screen space. Projected points are normalized to the
// unit square before they are scaled to pixels.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns p translated by offset.
func (p Vec2) Add(offset Vec2) Vec2 {
	return Vec2{p.X + offset.X, p.Y + offset.Y}
}

// Sub returns the difference p - q.
func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}
