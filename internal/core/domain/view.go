package domain

// ConnectorView is the serialized form of a connector.
type ConnectorView struct {
	ParentID string  `json:"parentId"`
	ChildID  string  `json:"childId"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Opacity  float64 `json:"opacity"`
}

// NodeView is the serialized form of a node. Connectors are keyed by ConnectorKey.
type NodeView struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Role       string                   `json:"role"`
	Color      string                   `json:"color"`
	Left       float64                  `json:"left"`
	Top        float64                  `json:"top"`
	Width      float64                  `json:"width"`
	Height     float64                  `json:"height"`
	ParentID   string                   `json:"parentId,omitempty"`
	ChildIDs   []string                 `json:"childIds"`
	Depth      int                      `json:"depth"`
	Expanded   bool                     `json:"expanded"`
	Opacity    float64                  `json:"opacity"`
	Mode       Mode                     `json:"mode,omitempty"`
	Connectors map[string]ConnectorView `json:"connectors"`
}

// ViewOf converts a connector for serialization.
func ViewOf(c *Connector) ConnectorView {
	return ConnectorView{
		ParentID: c.ParentID,
		ChildID:  c.ChildID,
		X1:       c.X1,
		Y1:       c.Y1,
		X2:       c.X2,
		Y2:       c.Y2,
		Opacity:  c.Opacity,
	}
}

// View converts n for serialization. The incoming connector is listed under the
// node's own key so both ends of a line are visible from either node.
func (n *Node) View(depth int) NodeView {
	v := NodeView{
		ID:         n.ID,
		Name:       n.Visual.Name,
		Role:       n.Visual.Role,
		Color:      n.Visual.Fill,
		Left:       n.Left,
		Top:        n.Top,
		Width:      n.Width,
		Height:     n.Height,
		ParentID:   n.ParentID,
		ChildIDs:   append([]string{}, n.ChildIDs...),
		Depth:      depth,
		Expanded:   n.Expanded,
		Opacity:    n.Opacity,
		Mode:       n.Mode,
		Connectors: make(map[string]ConnectorView),
	}
	for childID, c := range n.Connectors() {
		v.Connectors[ConnectorKey(childID)] = ViewOf(c)
	}
	if c, ok := n.Incoming(); ok {
		v.Connectors[ConnectorKey(n.ID)] = ViewOf(c)
	}
	return v
}
