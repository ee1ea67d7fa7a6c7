// Package surface implements the in-memory drawing surface the diagram lives on.
package surface

import (
	"context"
	"sync/atomic"

	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
)

// Canvas keeps z-ordered references to nodes and connectors and dispatches
// per-node events. Connectors always sit beneath nodes.
// Canvas is not safe for concurrent use; callers serialize access through the event loop.
type Canvas struct {
	offset   domain.Point
	nodes    []*domain.Node
	lines    []*domain.Connector
	handlers map[string]map[ports.EventKind][]ports.EventHandler
	renders  atomic.Uint64
}

// New creates an empty Canvas located at offset on the page.
func New(offset domain.Point) *Canvas {
	return &Canvas{
		offset:   offset,
		handlers: make(map[string]map[ports.EventKind][]ports.EventHandler),
	}
}

var _ ports.Surface = (*Canvas)(nil)

// AddNode draws n above every node drawn before it.
func (c *Canvas) AddNode(n *domain.Node) {
	c.nodes = append(c.nodes, n)
}

// AddConnector draws l beneath every node.
func (c *Canvas) AddConnector(l *domain.Connector) {
	c.lines = append(c.lines, l)
}

// Clear removes every primitive and handler.
func (c *Canvas) Clear() {
	c.nodes = nil
	c.lines = nil
	c.handlers = make(map[string]map[ports.EventKind][]ports.EventHandler)
}

// NodeAt returns the topmost visible node containing p.
func (c *Canvas) NodeAt(p domain.Point) (string, bool) {
	for i := len(c.nodes) - 1; i >= 0; i-- {
		n := c.nodes[i]
		if n.Opacity > domain.Hidden && n.Contains(p) {
			return n.ID, true
		}
	}
	return "", false
}

// On subscribes h to events of kind on node id.
func (c *Canvas) On(id string, kind ports.EventKind, h ports.EventHandler) {
	byKind, ok := c.handlers[id]
	if !ok {
		byKind = make(map[ports.EventKind][]ports.EventHandler)
		c.handlers[id] = byKind
	}
	byKind[kind] = append(byKind[kind], h)
}

// Fire runs the handlers subscribed to ev in subscription order, stopping at the first error.
// An event on a node nobody subscribed to fails with ErrTargetUnresolved.
func (c *Canvas) Fire(ctx context.Context, ev ports.Event) error {
	byKind, ok := c.handlers[ev.NodeID]
	if !ok {
		return domain.Tag(domain.ErrTargetUnresolved, "node_id", ev.NodeID)
	}
	for _, h := range byKind[ev.Kind] {
		if err := h(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// RequestRender records a redraw request.
func (c *Canvas) RequestRender() {
	c.renders.Add(1)
}

// Renders returns how many redraws were requested.
func (c *Canvas) Renders() uint64 {
	return c.renders.Load()
}

// Offset is the absolute page position of the canvas origin.
func (c *Canvas) Offset() domain.Point {
	return c.offset
}

// SetOffset moves the canvas origin on the page.
func (c *Canvas) SetOffset(p domain.Point) {
	c.offset = p
}

// Scene snapshots the current primitives.
func (c *Canvas) Scene() *domain.Scene {
	s := &domain.Scene{
		Nodes: make([]domain.SceneNode, 0, len(c.nodes)),
		Lines: make([]domain.SceneLine, 0, len(c.lines)),
	}
	for _, l := range c.lines {
		s.Lines = append(s.Lines, domain.SceneLine{
			ParentID: l.ParentID,
			ChildID:  l.ChildID,
			X1:       l.X1,
			Y1:       l.Y1,
			X2:       l.X2,
			Y2:       l.Y2,
			Opacity:  l.Opacity,
		})
	}
	for _, n := range c.nodes {
		s.Nodes = append(s.Nodes, domain.SceneNode{
			ID:      n.ID,
			Visual:  n.Visual,
			Left:    n.Left,
			Top:     n.Top,
			Width:   n.Width,
			Height:  n.Height,
			Opacity: n.Opacity,
		})
	}
	return s
}
