package ports

import "go.trai.ch/plugload/internal/core/domain"

// ModuleResolver resolves a raw package name to the value the package exports.
//
//go:generate go run go.uber.org/mock/mockgen -source=module_resolver.go -destination=mocks/mock_module_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve returns the module value for name.
	// Implementations may cache; callers must not rely on a fresh value per call.
	Resolve(name string) (any, error)
}

// ModuleInspector reports on-disk metadata for installed packages.
type ModuleInspector interface {
	// Inspect returns the metadata of name as installed for the project in dir.
	Inspect(dir, name string) (*domain.ModuleInfo, error)
}
