// Package connector maintains the parent to child lines of the tree.
package connector

import (
	"errors"

	"go.trai.ch/kin/internal/core/domain"
)

// Manager creates connectors and keeps their endpoints anchored to the nodes they join.
type Manager struct {
	registry *domain.Registry
}

// New creates a Manager resolving nodes through registry.
func New(registry *domain.Registry) *Manager {
	return &Manager{registry: registry}
}

// Connect creates the connector from parent to child and stores it on both ends.
func (m *Manager) Connect(parent, child *domain.Node, opacity float64) *domain.Connector {
	c := &domain.Connector{
		ParentID: parent.ID,
		ChildID:  child.ID,
		Opacity:  opacity,
	}
	c.SetStart(parent.BottomCenter())
	c.SetEnd(child.TopCenter())

	parent.AttachConnector(child.ID, c)
	child.AttachConnector(child.ID, c)
	return c
}

// ConnectAll links every registered parent to its children with hidden connectors
// and hides the children, yielding the collapsed initial tree.
// Children that do not resolve are skipped and reported together.
func (m *Manager) ConnectAll() ([]*domain.Connector, error) {
	var (
		out  []*domain.Connector
		errs []error
	)
	for parent := range m.registry.All() {
		for _, childID := range parent.ChildIDs {
			child, err := m.registry.Lookup(childID)
			if err != nil {
				errs = append(errs, domain.Tag(err, "parent_id", parent.ID))
				continue
			}
			child.Opacity = domain.Hidden
			out = append(out, m.Connect(parent, child, domain.Hidden))
		}
	}
	return out, errors.Join(errs...)
}

// Resync re-anchors every connector touching n after it moved: both ends of each
// outgoing connector and the end of its incoming one. Children are resolved before
// anything is written, so a dangling child leaves every connector unchanged.
func (m *Manager) Resync(n *domain.Node) error {
	children := make([]*domain.Node, 0, len(n.ChildIDs))
	for _, childID := range n.ChildIDs {
		child, err := m.registry.Lookup(childID)
		if err != nil {
			return domain.Tag(err, "parent_id", n.ID)
		}
		children = append(children, child)
	}

	start := n.BottomCenter()
	for _, child := range children {
		end := child.TopCenter()
		if c, ok := n.Connector(child.ID); ok {
			c.SetStart(start)
			c.SetEnd(end)
		}
		if c, ok := child.Incoming(); ok {
			c.SetStart(start)
			c.SetEnd(end)
		}
	}

	if !n.IsRoot() {
		if c, ok := n.Incoming(); ok {
			c.SetEnd(n.TopCenter())
		}
	}
	return nil
}
