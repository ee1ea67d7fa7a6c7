package surface

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
)

// NodeID is the unique identifier for the surface Graft node.
const NodeID graft.ID = "adapter.surface"

func init() {
	graft.Register(graft.Node[ports.Surface]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Surface, error) {
			return New(domain.Point{}), nil
		},
	})
}
