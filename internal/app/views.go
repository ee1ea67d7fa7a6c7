package app

import (
	"go.trai.ch/kin/internal/core/domain"
)

// Nodes returns the diagram as a seed-shaped forest with current positions.
// Feeding the result back to Initialize redraws the same tree.
func (a *App) Nodes() []*domain.TreeNode {
	visited := make(map[string]bool)

	var build func(n *domain.Node) *domain.TreeNode
	build = func(n *domain.Node) *domain.TreeNode {
		visited[n.ID] = true
		left, top := n.Left, n.Top
		t := &domain.TreeNode{
			ID:       n.ID,
			Name:     n.Visual.Name,
			Role:     n.Visual.Role,
			Color:    n.Visual.Fill,
			Left:     &left,
			Top:      &top,
			ParentID: n.ParentID,
		}
		for _, childID := range n.ChildIDs {
			child, ok := a.registry.FindByID(childID)
			if !ok || visited[childID] {
				continue
			}
			t.Children = append(t.Children, build(child))
		}
		return t
	}

	forest := make([]*domain.TreeNode, 0)
	for n := range a.registry.All() {
		if visited[n.ID] {
			continue
		}
		// Nodes whose parent never resolved are listed as roots.
		if _, ok := a.registry.FindByID(n.ParentID); !n.IsRoot() && ok {
			continue
		}
		forest = append(forest, build(n))
	}
	return forest
}

// Node returns the serialized view of a node.
func (a *App) Node(id string) (domain.NodeView, error) {
	n, err := a.resolve(id)
	if err != nil {
		return domain.NodeView{}, err
	}
	ancestors, err := a.registry.Ancestors(id)
	if err != nil {
		return domain.NodeView{}, err
	}
	return n.View(len(ancestors)), nil
}

// Scene snapshots the surface with the configured export settings.
func (a *App) Scene() *domain.Scene {
	s := a.surface.Scene()
	s.Background = a.canvas.Background
	s.Margin = a.canvas.Margin
	return s
}

// Panel returns the side-panel state.
func (a *App) Panel() domain.Panel {
	return a.panel
}

// Buttons returns the placement of the action buttons of the selected node.
func (a *App) Buttons() domain.ButtonPlacement {
	return a.buttons
}

// Selected returns the id of the node Submit acts on, empty when nothing is selected.
func (a *App) Selected() string {
	return a.selected
}

// Focused returns the id of the node under the pointer.
func (a *App) Focused() string {
	return a.focused
}

// Renders reports how many redraws were requested so far.
func (a *App) Renders() uint64 {
	return a.surface.Renders()
}
