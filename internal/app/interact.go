package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
)

// Drag moves a node so that its top-left corner lands on (left, top).
func (a *App) Drag(ctx context.Context, id string, left, top float64) (err error) {
	ctx, span := a.tracer.Start(ctx, "drag", ports.WithNodeID(id))
	defer func() { finish(span, err) }()

	if _, err := a.resolve(id); err != nil {
		return err
	}
	return a.surface.Fire(ctx, ports.Event{
		Kind:   ports.EventMoving,
		NodeID: id,
		Point:  domain.Point{X: left, Y: top},
	})
}

func (a *App) moveTo(id string, p domain.Point) error {
	n, err := a.registry.Lookup(id)
	if err != nil {
		return err
	}

	prev := domain.Point{X: n.Left, Y: n.Top}
	n.Left, n.Top = p.X, p.Y
	if err := a.connectors.Resync(n); err != nil {
		n.Left, n.Top = prev.X, prev.Y
		return err
	}

	if a.buttons.NodeID == id {
		a.buttons = a.placeButtons(n)
	}
	a.surface.RequestRender()
	return nil
}

// Select shows the action buttons of a node and returns where they are placed.
// The node the side panel acts on is left unchanged.
func (a *App) Select(ctx context.Context, id string) (_ domain.ButtonPlacement, err error) {
	ctx, span := a.tracer.Start(ctx, "select", ports.WithNodeID(id))
	defer func() { finish(span, err) }()

	if _, err := a.resolve(id); err != nil {
		return domain.ButtonPlacement{}, err
	}
	if err := a.surface.Fire(ctx, ports.Event{Kind: ports.EventSelected, NodeID: id}); err != nil {
		return domain.ButtonPlacement{}, err
	}
	return a.buttons, nil
}

func (a *App) selectNode(id string) error {
	n, err := a.registry.Lookup(id)
	if err != nil {
		return err
	}
	a.buttons = a.placeButtons(n)
	return nil
}

// placeButtons anchors the action buttons to the node's bottom-left corner in page coordinates.
func (a *App) placeButtons(n *domain.Node) domain.ButtonPlacement {
	offset := a.surface.Offset()
	return domain.ButtonPlacement{
		NodeID:  n.ID,
		Left:    offset.X + n.Left,
		Top:     offset.Y + n.Top + n.Height - domain.ButtonOffset,
		Opacity: domain.Visible,
	}
}

// Hover records id as the node under the pointer.
func (a *App) Hover(ctx context.Context, id string) error {
	if a.focused != "" && a.focused != id {
		if err := a.Unhover(ctx); err != nil {
			return err
		}
	}
	if _, err := a.resolve(id); err != nil {
		return err
	}
	return a.surface.Fire(ctx, ports.Event{Kind: ports.EventMouseOver, NodeID: id})
}

// Unhover clears the node under the pointer, if any.
func (a *App) Unhover(ctx context.Context) error {
	if a.focused == "" {
		return nil
	}
	return a.surface.Fire(ctx, ports.Event{Kind: ports.EventMouseOut, NodeID: a.focused})
}

// Expand toggles the subtree under target. A leaf is reported through the
// notifier and returned as ErrNoChildren without changing anything.
func (a *App) Expand(ctx context.Context, target string) (err error) {
	ctx, span := a.tracer.Start(ctx, "expand", ports.WithNodeID(target))
	defer func() { finish(span, err) }()

	n, err := a.resolve(target)
	if err != nil {
		return err
	}
	if err := a.toggle(ctx, n); err != nil {
		return err
	}
	a.selected = n.ID
	a.focused = n.ID
	span.SetAttribute("kin.expanded", n.Expanded)
	return nil
}

func (a *App) toggle(ctx context.Context, n *domain.Node) error {
	if err := a.visibility.ToggleExpand(n); err != nil {
		if errors.Is(err, domain.ErrNoChildren) {
			a.notifier.Notify(ctx, domain.ErrNoChildren.Error())
		}
		return err
	}
	a.surface.RequestRender()
	return nil
}

// OpenAdd opens the side panel to create a child of target.
func (a *App) OpenAdd(ctx context.Context, target string) (err error) {
	_, span := a.tracer.Start(ctx, "open_add", ports.WithNodeID(target))
	defer func() { finish(span, err) }()

	n, err := a.resolve(target)
	if err != nil {
		return err
	}
	a.openPanel(n, domain.ModeAdd, domain.FormValues{})
	return nil
}

// OpenEdit opens the side panel to edit target and returns the pre-filled form.
func (a *App) OpenEdit(ctx context.Context, target string) (_ domain.FormValues, err error) {
	_, span := a.tracer.Start(ctx, "open_edit", ports.WithNodeID(target))
	defer func() { finish(span, err) }()

	n, err := a.resolve(target)
	if err != nil {
		return domain.FormValues{}, err
	}
	form := domain.FormFromVisual(n.Visual)
	a.openPanel(n, domain.ModeEdit, form)
	return form, nil
}

func (a *App) openPanel(n *domain.Node, mode domain.Mode, form domain.FormValues) {
	if prev, ok := a.registry.FindByID(a.selected); ok && prev != n {
		prev.Mode = domain.ModeNone
	}
	a.selected = n.ID
	n.Mode = mode
	a.panel = domain.Panel{
		Open:   true,
		Width:  domain.PanelWidth,
		Mode:   mode,
		NodeID: n.ID,
		Form:   form,
	}
}

// ClosePanel dismisses the side panel and drops the pending add or edit.
func (a *App) ClosePanel() {
	if n, ok := a.registry.FindByID(a.panel.NodeID); ok {
		n.Mode = domain.ModeNone
	}
	a.panel = domain.Panel{}
}

// Submit applies the side-panel form to the selected node. In edit mode the
// node's visuals are replaced; in add mode a new child is created, connected and
// revealed. It returns the edited or created node.
func (a *App) Submit(ctx context.Context, form domain.FormValues) (_ *domain.Node, err error) {
	_, span := a.tracer.Start(ctx, "submit", ports.WithNodeID(a.selected))
	defer func() { finish(span, err) }()

	if a.selected == "" {
		return nil, domain.ErrNoSelection
	}
	n, err := a.registry.Lookup(a.selected)
	if err != nil {
		return nil, err
	}

	var result *domain.Node
	switch n.Mode {
	case domain.ModeEdit:
		n.Visual = form.Visual()
		result = n
	case domain.ModeAdd:
		result, err = a.addChild(n, form)
		if err != nil {
			return nil, err
		}
		span.SetAttribute("kin.child_id", result.ID)
	default:
		return nil, domain.Tag(domain.ErrNoPendingMode, "node_id", n.ID)
	}

	n.Mode = domain.ModeNone
	a.panel = domain.Panel{}
	a.surface.RequestRender()
	return result, nil
}

func (a *App) addChild(parent *domain.Node, form domain.FormValues) (*domain.Node, error) {
	id, err := a.ids.NewID()
	if err != nil {
		return nil, err
	}

	child, err := a.createNode(domain.TreeNode{
		ID:       id,
		Name:     form.Name,
		Role:     form.Role,
		Color:    form.Color,
		ParentID: parent.ID,
	})
	if err != nil {
		return nil, err
	}

	line := a.connectors.Connect(parent, child, domain.Visible)
	a.surface.AddConnector(line)

	if err := a.visibility.Reveal(parent); err != nil {
		a.logger.Warn(err.Error())
	}
	a.logger.Info("node added: " + child.ID + " under " + parent.ID)
	return child, nil
}

// NodeAt resolves a page position to the topmost visible node under it.
func (a *App) NodeAt(p domain.Point) (string, error) {
	offset := a.surface.Offset()
	id, ok := a.surface.NodeAt(domain.Point{X: p.X - offset.X, Y: p.Y - offset.Y})
	if !ok {
		return "", domain.Tag(domain.ErrTargetUnresolved, "point", fmt.Sprintf("%g,%g", p.X, p.Y))
	}
	return id, nil
}

// resolve maps an interaction target to its node.
func (a *App) resolve(target string) (*domain.Node, error) {
	if target == "" {
		return nil, domain.ErrTargetUnresolved
	}
	return a.registry.Lookup(target)
}
