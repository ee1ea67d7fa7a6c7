package domain

import "math"

// SceneNode is a node card as drawn on the surface.
type SceneNode struct {
	ID      string
	Visual  Visual
	Left    float64
	Top     float64
	Width   float64
	Height  float64
	Opacity float64
}

// SceneLine is a connector as drawn on the surface.
type SceneLine struct {
	ParentID string
	ChildID  string
	X1       float64
	Y1       float64
	X2       float64
	Y2       float64
	Opacity  float64
}

// Scene is a snapshot of the drawing surface. Lines are drawn beneath nodes.
type Scene struct {
	Nodes []SceneNode
	Lines []SceneLine
	// Background and Margin tune exported images; zero values use the exporter's defaults.
	Background string
	Margin     float64
}

// Visible reports whether any node in the scene can be seen.
func (s *Scene) Visible() bool {
	for _, n := range s.Nodes {
		if n.Opacity > Hidden {
			return true
		}
	}
	return false
}

// Bounds returns the top-left and bottom-right corners enclosing every visible node.
func (s *Scene) Bounds() (minPt, maxPt Point) {
	minPt = Point{X: math.Inf(1), Y: math.Inf(1)}
	maxPt = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, n := range s.Nodes {
		if n.Opacity <= Hidden {
			continue
		}
		minPt.X = math.Min(minPt.X, n.Left)
		minPt.Y = math.Min(minPt.Y, n.Top)
		maxPt.X = math.Max(maxPt.X, n.Left+n.Width)
		maxPt.Y = math.Max(maxPt.Y, n.Top+n.Height)
	}
	if math.IsInf(minPt.X, 1) {
		return Point{}, Point{}
	}
	return minPt, maxPt
}
