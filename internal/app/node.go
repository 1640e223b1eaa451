package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugload/internal/adapters/config"
	"go.trai.ch/plugload/internal/adapters/logger"
	"go.trai.ch/plugload/internal/adapters/manifest"
	"go.trai.ch/plugload/internal/adapters/nodemodules"
	"go.trai.ch/plugload/internal/adapters/registry"
	"go.trai.ch/plugload/internal/adapters/telemetry/progrock"
	"go.trai.ch/plugload/internal/core/ports"
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
			manifest.NodeID,
			registry.NodeID,
			nodemodules.NodeID,
			logger.NodeID,
			progrock.NodeID,
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
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ModuleResolver](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.ModuleInspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, resolver, inspector, log, telemetry), nil
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

	options, err := graft.Dep[*config.FileOptionsLoader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, options, telemetry), nil
}
