package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugload/internal/adapters/logger"
	"go.trai.ch/plugload/internal/core/ports"
)

// NodeID is the graft node providing the options file loader.
const NodeID graft.ID = "adapter.options_loader"

func init() {
	graft.Register(graft.Node[*FileOptionsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*FileOptionsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileOptionsLoader(log), nil
		},
	})
}
