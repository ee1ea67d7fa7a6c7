package raster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kin/internal/core/ports"
)

// NodeID is the unique identifier for the PNG exporter Graft node.
const NodeID graft.ID = "adapter.exporter"

func init() {
	graft.Register(graft.Node[ports.Exporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Exporter, error) {
			exporter, err := New()
			if err != nil {
				return nil, err
			}
			return exporter, nil
		},
	})
}
