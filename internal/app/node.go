package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kin/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/idgen"     //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/notify"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/raster"    //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/surface"   //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/kin/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			surface.NodeID,
			logger.NodeID,
			notify.NodeID,
			idgen.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			raster.NodeID,
			watcher.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	canvas, err := graft.Dep[ports.Surface](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	ids, err := graft.Dep[ports.IDGenerator](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	return New(canvas, log, notifier, ids, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	exporter, err := graft.Dep[ports.Exporter](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	return NewComponents(app, log, loader, exporter, w), nil
}
