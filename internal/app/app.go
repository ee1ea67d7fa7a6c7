// Package app implements the interaction controller of the family tree.
package app

import (
	"context"
	"errors"

	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/kin/internal/engine/connector"
	"go.trai.ch/kin/internal/engine/layout"
	"go.trai.ch/kin/internal/engine/visibility"
)

// App owns the diagram and applies user interactions to it.
// It is not safe for concurrent use; concurrent callers go through a Loop.
type App struct {
	surface  ports.Surface
	logger   ports.Logger
	notifier ports.Notifier
	ids      ports.IDGenerator
	tracer   ports.Tracer

	canvas     domain.CanvasConfig
	registry   *domain.Registry
	layout     *layout.Engine
	connectors *connector.Manager
	visibility *visibility.Propagator

	selected string
	focused  string
	panel    domain.Panel
	buttons  domain.ButtonPlacement
}

// New creates an App drawing on surface with the default canvas settings.
func New(
	surface ports.Surface,
	logger ports.Logger,
	notifier ports.Notifier,
	ids ports.IDGenerator,
	tracer ports.Tracer,
) *App {
	a := &App{
		surface:  surface,
		logger:   logger,
		notifier: notifier,
		ids:      ids,
		tracer:   tracer,
	}
	a.Configure(domain.DefaultCanvas())
	return a
}

// Configure applies canvas settings. They take effect on the next Initialize.
func (a *App) Configure(canvas domain.CanvasConfig) {
	if canvas.NodeWidth <= 0 {
		canvas.NodeWidth = domain.DefaultNodeWidth
	}
	if canvas.NodeHeight <= 0 {
		canvas.NodeHeight = domain.DefaultNodeHeight
	}
	a.canvas = canvas
	a.surface.SetOffset(domain.Point{X: canvas.OffsetLeft, Y: canvas.OffsetTop})
	a.reset()
}

// Load configures the canvas from cfg and draws its seed.
func (a *App) Load(ctx context.Context, cfg *domain.Config) error {
	a.Configure(cfg.Canvas)
	return a.Initialize(ctx, cfg.Seed, cfg.ExpandID)
}

func (a *App) reset() {
	a.surface.Clear()
	a.registry = domain.NewRegistry()
	a.layout = layout.New(a.registry, a.canvas.VerticalGap)
	a.connectors = connector.New(a.registry)
	a.visibility = visibility.New(a.registry, a.canvas.MaxDepth)
	a.selected = ""
	a.focused = ""
	a.panel = domain.Panel{}
	a.buttons = domain.ButtonPlacement{}
}

// Initialize replaces the diagram with seed. Every node is drawn first, then the
// connectors, collapsed, and finally the subtree under expandID is opened.
// Nodes that cannot be placed are reported and kept at their seed position.
func (a *App) Initialize(ctx context.Context, seed []*domain.TreeNode, expandID string) (err error) {
	ctx, span := a.tracer.Start(ctx, "initialize", ports.WithNodeID(expandID))
	defer func() { finish(span, err) }()

	if err := domain.ValidateSeed(seed); err != nil {
		return err
	}
	a.reset()

	for rec := range domain.Flatten(seed) {
		if _, err := a.createNode(rec); err != nil {
			if errors.Is(err, domain.ErrCycleDetected) {
				a.logger.Error(err)
				continue
			}
			a.logger.Warn(err.Error())
		}
	}

	lines, err := a.connectors.ConnectAll()
	if err != nil {
		a.logger.Warn(err.Error())
	}
	for _, c := range lines {
		a.surface.AddConnector(c)
	}
	span.SetAttribute("kin.nodes", a.registry.Len())
	span.SetAttribute("kin.connectors", len(lines))

	// A subtree that cannot be opened is reported and the tree stays collapsed.
	if n, ok := a.registry.FindByID(expandID); ok {
		if err := a.toggle(ctx, n); err != nil && !errors.Is(err, domain.ErrNoChildren) {
			a.logger.Error(err)
		}
	}

	a.surface.RequestRender()
	return nil
}

// createNode registers, places and draws the node described by rec.
// A child is chained after its siblings unless rec carries its own position.
// The node is drawn even when placement fails; that error is returned for reporting.
func (a *App) createNode(rec domain.TreeNode) (*domain.Node, error) {
	if err := a.registry.CheckParent(rec.ID, rec.ParentID); err != nil {
		return nil, err
	}

	n := domain.NewNode(rec.ID, rec.Visual())
	n.Width, n.Height = a.canvas.NodeWidth, a.canvas.NodeHeight
	if rec.Left != nil {
		n.Left = *rec.Left
	}
	if rec.Top != nil {
		n.Top = *rec.Top
	}
	n.ParentID = rec.ParentID

	a.registry.Register(n)
	placeErr := a.layout.Place(n)
	// Explicit coordinates win over the computed ones.
	if placeErr == nil && !n.IsRoot() {
		if rec.Left != nil {
			n.Left = *rec.Left
		}
		if rec.Top != nil {
			n.Top = *rec.Top
		}
	}
	a.surface.AddNode(n)
	a.bind(n.ID)
	return n, placeErr
}

// bind subscribes the controller to the surface events of a node.
func (a *App) bind(id string) {
	a.surface.On(id, ports.EventMoving, func(_ context.Context, ev ports.Event) error {
		return a.moveTo(ev.NodeID, ev.Point)
	})
	a.surface.On(id, ports.EventSelected, func(_ context.Context, ev ports.Event) error {
		return a.selectNode(ev.NodeID)
	})
	a.surface.On(id, ports.EventMouseOver, func(_ context.Context, ev ports.Event) error {
		a.focused = ev.NodeID
		return nil
	})
	a.surface.On(id, ports.EventMouseOut, func(_ context.Context, ev ports.Event) error {
		if a.focused == ev.NodeID {
			a.focused = ""
		}
		return nil
	})
}

func finish(span ports.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
