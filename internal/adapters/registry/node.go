package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugload/internal/core/ports"
)

// NodeID is the graft node providing the default ports.ModuleResolver.
const NodeID graft.ID = "adapter.module_resolver"

func init() {
	graft.Register(graft.Node[ports.ModuleResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleResolver, error) {
			return Default(), nil
		},
	})
}
