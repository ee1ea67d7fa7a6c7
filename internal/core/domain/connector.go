package domain

// Point is a position on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Connector is the line drawn from a parent's bottom-center to a child's top-center.
// The same pointer is held by both ends.
type Connector struct {
	ParentID string
	ChildID  string
	X1       float64
	Y1       float64
	X2       float64
	Y2       float64
	Opacity  float64
}

// Start returns the parent side endpoint.
func (c *Connector) Start() Point {
	return Point{X: c.X1, Y: c.Y1}
}

// End returns the child side endpoint.
func (c *Connector) End() Point {
	return Point{X: c.X2, Y: c.Y2}
}

// SetStart moves the parent side endpoint.
func (c *Connector) SetStart(p Point) {
	c.X1, c.Y1 = p.X, p.Y
}

// SetEnd moves the child side endpoint.
func (c *Connector) SetEnd(p Point) {
	c.X2, c.Y2 = p.X, p.Y
}
