// Package layout positions nodes below their parent, stacked after their previous sibling.
package layout

import (
	"go.trai.ch/kin/internal/core/domain"
)

// Engine places nodes in a single pass as they are attached.
// Earlier siblings are never moved.
type Engine struct {
	registry *domain.Registry
	gap      float64
}

// New creates an Engine resolving parents through registry.
// A non-positive gap falls back to domain.VerticalGap.
func New(registry *domain.Registry, gap float64) *Engine {
	if gap <= 0 {
		gap = domain.VerticalGap
	}
	return &Engine{registry: registry, gap: gap}
}

// Place positions n relative to its parent and appends it to the parent's children.
// Roots keep their seed coordinates. When the parent does not resolve, n is left
// untouched and ErrParentNotFound is returned.
func (e *Engine) Place(n *domain.Node) error {
	if n.IsRoot() {
		return nil
	}

	parent, ok := e.registry.FindByID(n.ParentID)
	if !ok {
		err := domain.Tag(domain.ErrParentNotFound, "parent_id", n.ParentID)
		return domain.Tag(err, "node_id", n.ID)
	}

	n.Top = parent.Top + parent.Height + e.gap
	n.Left = parent.Left - parent.Width/2

	if last := len(parent.ChildIDs); last > 0 {
		if sibling, ok := e.registry.FindByID(parent.ChildIDs[last-1]); ok {
			n.Left = sibling.Left + sibling.Width
		}
	}

	parent.ChildIDs = append(parent.ChildIDs, n.ID)
	return nil
}
