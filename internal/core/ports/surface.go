package ports

import (
	"context"

	"go.trai.ch/kin/internal/core/domain"
)

// EventKind names an interaction delivered by the drawing surface.
type EventKind string

const (
	// EventMoving fires while a node is dragged.
	EventMoving EventKind = "moving"
	// EventSelected fires when a node is clicked.
	EventSelected EventKind = "selected"
	// EventMouseOver fires when the pointer enters a node.
	EventMouseOver EventKind = "mouse:over"
	// EventMouseOut fires when the pointer leaves a node.
	EventMouseOut EventKind = "mouse:out"
)

// Event is an interaction with a node on the surface.
type Event struct {
	Kind   EventKind
	NodeID string
	// Point is the new top-left corner for EventMoving.
	Point domain.Point
}

// EventHandler reacts to an Event.
type EventHandler func(ctx context.Context, ev Event) error

// Surface is the drawing surface the diagram lives on.
// Connectors are drawn beneath nodes and never receive pointer events.
//
//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// AddNode draws n on top of everything drawn so far.
	AddNode(n *domain.Node)
	// AddConnector draws c beneath every node.
	AddConnector(c *domain.Connector)
	// Clear removes every primitive and handler.
	Clear()
	// NodeAt returns the topmost visible node containing p.
	NodeAt(p domain.Point) (string, bool)
	// On subscribes h to events of kind on the node id.
	On(id string, kind EventKind, h EventHandler)
	// Fire delivers ev to the handlers subscribed to its node.
	Fire(ctx context.Context, ev Event) error
	// RequestRender schedules a redraw.
	RequestRender()
	// Renders returns how many redraws were requested.
	Renders() uint64
	// Offset is the absolute page position of the surface's origin.
	Offset() domain.Point
	// SetOffset moves the surface's origin on the page.
	SetOffset(p domain.Point)
	// Scene snapshots the current primitives.
	Scene() *domain.Scene
}
