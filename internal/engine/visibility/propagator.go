// Package visibility shows and hides subtrees for expand, collapse and reveal.
package visibility

import (
	"go.trai.ch/kin/internal/core/domain"
)

// Propagator applies opacity changes to whole subtrees.
type Propagator struct {
	registry *domain.Registry
	maxDepth int
}

// New creates a Propagator. A non-positive maxDepth falls back to domain.DefaultMaxDepth.
func New(registry *domain.Registry, maxDepth int) *Propagator {
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}
	return &Propagator{registry: registry, maxDepth: maxDepth}
}

// ToggleExpand flips n's expanded flag and shows or hides every descendant with it,
// ignoring the descendants' own expanded flags. A leaf returns ErrNoChildren.
func (p *Propagator) ToggleExpand(n *domain.Node) error {
	if !n.HasChildren() {
		return domain.Tag(domain.ErrNoChildren, "node_id", n.ID)
	}

	subtree, err := p.registry.Descendants(n, p.maxDepth)
	if err != nil {
		return err
	}

	n.Expanded = !n.Expanded
	opacity := domain.Hidden
	if n.Expanded {
		opacity = domain.Visible
	}
	apply(subtree, opacity)
	return nil
}

// Reveal makes every descendant of n and the connectors between them visible.
func (p *Propagator) Reveal(n *domain.Node) error {
	subtree, err := p.registry.Descendants(n, p.maxDepth)
	if err != nil {
		return err
	}
	apply(subtree, domain.Visible)
	return nil
}

func apply(nodes []*domain.Node, opacity float64) {
	for _, n := range nodes {
		n.SetOpacity(opacity)
	}
}
