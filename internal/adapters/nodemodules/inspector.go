// Package nodemodules locates installed packages the way Node does: in a
// node_modules directory of the project or any of its parents.
package nodemodules

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"go.trai.ch/plugload/internal/adapters/manifest"
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Inspector implements ports.ModuleInspector on top of a manifest.FileSystem.
type Inspector struct {
	fs manifest.FileSystem

	mu    sync.RWMutex
	cache map[string]*domain.ModuleInfo

	requestGroup singleflight.Group
}

// NewInspector creates an Inspector reading from the host filesystem.
func NewInspector() *Inspector {
	return NewInspectorWithFS(manifest.NewOSFS())
}

// NewInspectorWithFS creates an Inspector reading from fsys.
func NewInspectorWithFS(fsys manifest.FileSystem) *Inspector {
	return &Inspector{
		fs:    fsys,
		cache: make(map[string]*domain.ModuleInfo),
	}
}

// Inspect finds name in the nearest node_modules at or above dir and reads its manifest.
func (i *Inspector) Inspect(dir, name string) (*domain.ModuleInfo, error) {
	key := dir + "\x00" + name

	i.mu.RLock()
	info, ok := i.cache[key]
	i.mu.RUnlock()
	if ok {
		return info, nil
	}

	result, err, _ := i.requestGroup.Do(key, func() (any, error) {
		info, err := i.lookup(dir, name)
		if err != nil {
			return nil, err
		}
		i.mu.Lock()
		i.cache[key] = info
		i.mu.Unlock()
		return info, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.ModuleInfo), nil
}

func (i *Inspector) lookup(dir, name string) (*domain.ModuleInfo, error) {
	currentDir := dir
	for {
		pkgDir := filepath.Join(currentDir, domain.ModulesDirName, filepath.FromSlash(name))
		pkgPath := filepath.Join(pkgDir, domain.ManifestFileName)

		data, err := i.fs.ReadFile(pkgPath)
		switch {
		case err == nil:
			pkg, err := manifest.Decode(data)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "module", name), "path", pkgPath)
			}
			info := &domain.ModuleInfo{
				Name:    pkg.Name,
				Version: pkg.Version,
				Main:    pkg.Main,
				Dir:     pkgDir,
			}
			if info.Name == "" {
				info.Name = name
			}
			return info, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "module", name), "path", pkgPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	err := zerr.Wrap(domain.ErrModuleNotFound, fmt.Sprintf("cannot find `%s`", name))
	return nil, zerr.With(zerr.With(err, "module", name), "dir", dir)
}

// Resolver adapts the Inspector to a domain.ResolveFunc rooted at dir.
// The resolved value is the *domain.ModuleInfo of the installed package.
func (i *Inspector) Resolver(dir string) domain.ResolveFunc {
	return func(name string) (any, error) {
		return i.Inspect(dir, name)
	}
}
