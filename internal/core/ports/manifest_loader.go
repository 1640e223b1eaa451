// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/plugload/internal/core/domain"

// ManifestLoader obtains the manifest that drives plugin discovery.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load returns the in-memory manifest of source if set, otherwise reads
	// source.Path, otherwise searches upward from source.Cwd.
	// It returns domain.ErrConfigurationNotFound when no manifest is obtainable.
	Load(source domain.ManifestSource) (*domain.Manifest, error)
}
