package nodemodules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugload/internal/core/ports"
)

// NodeID is the graft node providing the ports.ModuleInspector.
const NodeID graft.ID = "adapter.module_inspector"

func init() {
	graft.Register(graft.Node[ports.ModuleInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleInspector, error) {
			return NewInspector(), nil
		},
	})
}
