// Package treeview renders the family tree as styled terminal text.
package treeview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/ui/style"
)

// Source provides the diagram state to render.
type Source interface {
	Nodes() []*domain.TreeNode
	Node(id string) (domain.NodeView, error)
}

// Render draws every root of src as a tree. Parents show whether they are
// expanded and hidden nodes are marked.
func Render(r *lipgloss.Renderer, src Source) (string, error) {
	v := &view{
		src:    src,
		name:   r.NewStyle().Bold(true),
		role:   r.NewStyle().Foreground(style.Slate),
		hidden: r.NewStyle().Faint(true),
		r:      r,
	}

	t := tree.New().EnumeratorStyle(r.NewStyle().Foreground(style.Slate).PaddingRight(1))
	for _, root := range src.Nodes() {
		child, err := v.build(root)
		if err != nil {
			return "", err
		}
		t.Child(child)
	}
	return t.String(), nil
}

type view struct {
	src    Source
	name   lipgloss.Style
	role   lipgloss.Style
	hidden lipgloss.Style
	r      *lipgloss.Renderer
}

// build returns a plain label for leaves and a subtree for parents.
func (v *view) build(t *domain.TreeNode) (any, error) {
	n, err := v.src.Node(t.ID)
	if err != nil {
		return nil, err
	}
	label := v.label(n)
	if len(t.Children) == 0 {
		return label, nil
	}

	sub := tree.Root(label)
	for _, c := range t.Children {
		child, err := v.build(c)
		if err != nil {
			return nil, err
		}
		sub.Child(child)
	}
	return sub, nil
}

func (v *view) label(n domain.NodeView) string {
	icon := style.Dot
	switch {
	case len(n.ChildIDs) > 0 && n.Expanded:
		icon = style.Expanded
	case len(n.ChildIDs) > 0:
		icon = style.Folded
	}

	s := v.r.NewStyle().Foreground(style.Fill(n.Color)).Render(icon) + " " +
		v.name.Render(n.Name) + " " +
		v.role.Render("("+n.Role+")")
	if n.Opacity <= domain.Hidden {
		s += " " + v.hidden.Render("hidden")
	}
	return s
}
