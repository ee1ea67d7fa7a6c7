package domain

import "iter"

const (
	// Hidden is the opacity of a collapsed node or connector.
	Hidden = 0.0
	// Visible is the opacity of a shown node or connector.
	Visible = 1.0

	// DefaultNodeWidth is the width of a node card.
	DefaultNodeWidth = 160.0
	// DefaultNodeHeight is the height of a node card.
	DefaultNodeHeight = 80.0
	// VerticalGap is the space between a parent's bottom edge and its children's top edge.
	VerticalGap = 25.0

	// ButtonOffset is subtracted from a node's bottom edge to place its action buttons.
	ButtonOffset = 75.0
	// PanelWidth is the width of the side panel while it is open.
	PanelWidth = 250.0

	// ConnectorPrefix prefixes connector keys and generated node ids.
	ConnectorPrefix = "line-"
)

// Mode is the pending side-panel action of a node.
type Mode string

const (
	// ModeNone means no form action is pending.
	ModeNone Mode = ""
	// ModeAdd means the form will create a child of the node.
	ModeAdd Mode = "add"
	// ModeEdit means the form will overwrite the node's visuals.
	ModeEdit Mode = "edit"
)

// Visual holds the user editable appearance of a node card.
type Visual struct {
	Fill string
	Name string
	Role string
}

// Node is a drawable card in the family tree.
// ParentID never changes after creation and ChildIDs only grows.
type Node struct {
	ID       string
	Visual   Visual
	Left     float64
	Top      float64
	Width    float64
	Height   float64
	ParentID string
	ChildIDs []string
	Expanded bool
	Opacity  float64
	Mode     Mode

	connectors map[string]*Connector
}

// NewNode creates a visible node with the default card size at the origin.
func NewNode(id string, v Visual) *Node {
	return &Node{
		ID:      id,
		Visual:  v,
		Width:   DefaultNodeWidth,
		Height:  DefaultNodeHeight,
		Opacity: Visible,
	}
}

// ConnectorKey returns the key under which the connector to childID is exposed.
func ConnectorKey(childID string) string {
	return ConnectorPrefix + childID
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}

// HasChildren reports whether any child was ever attached to the node.
func (n *Node) HasChildren() bool {
	return len(n.ChildIDs) > 0
}

// BottomCenter is where outgoing connectors start.
func (n *Node) BottomCenter() Point {
	return Point{X: n.Left + n.Width/2, Y: n.Top + n.Height}
}

// TopCenter is where the incoming connector ends.
func (n *Node) TopCenter() Point {
	return Point{X: n.Left + n.Width/2, Y: n.Top}
}

// Contains reports whether p lies inside the node's bounding box.
func (n *Node) Contains(p Point) bool {
	return p.X >= n.Left && p.X <= n.Left+n.Width && p.Y >= n.Top && p.Y <= n.Top+n.Height
}

// Connector returns the connector stored under childID.
// On a child, its own id yields the incoming connector.
func (n *Node) Connector(childID string) (*Connector, bool) {
	c, ok := n.connectors[childID]
	return c, ok
}

// Incoming returns the connector from the node's parent.
func (n *Node) Incoming() (*Connector, bool) {
	return n.Connector(n.ID)
}

// AttachConnector stores c under childID.
func (n *Node) AttachConnector(childID string, c *Connector) {
	if n.connectors == nil {
		n.connectors = make(map[string]*Connector)
	}
	n.connectors[childID] = c
}

// Connectors yields the outgoing connectors in child order.
func (n *Node) Connectors() iter.Seq2[string, *Connector] {
	return func(yield func(string, *Connector) bool) {
		for _, id := range n.ChildIDs {
			c, ok := n.connectors[id]
			if !ok {
				continue
			}
			if !yield(id, c) {
				return
			}
		}
	}
}

// SetOpacity sets the opacity of the node and of its incoming connector.
func (n *Node) SetOpacity(opacity float64) {
	n.Opacity = opacity
	if c, ok := n.Incoming(); ok {
		c.Opacity = opacity
	}
}
