// Package manifest locates and reads the project manifest that declares plugin dependencies.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/plugload/internal/core/ports"
	"go.trai.ch/zerr"
)

// manifestNames are tried in order in every directory of the upward search.
var manifestNames = []string{domain.ManifestFileName, domain.ManifestYAMLFileName}

// Loader implements ports.ManifestLoader on top of a FileSystem.
type Loader struct {
	FS     FileSystem
	Logger ports.Logger
	Getwd  func() (string, error)
}

// NewLoader creates a Loader reading from the host filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(NewOSFS(), logger)
}

// NewLoaderWithFS creates a Loader reading from fsys.
func NewLoaderWithFS(fsys FileSystem, logger ports.Logger) *Loader {
	return &Loader{
		FS:     fsys,
		Logger: logger,
		Getwd:  os.Getwd,
	}
}

// Load returns source.Manifest when set, reads source.Path when set, and
// otherwise searches upward from source.Cwd for a manifest file.
func (l *Loader) Load(source domain.ManifestSource) (*domain.Manifest, error) {
	if source.Manifest != nil {
		return source.Manifest, nil
	}

	cwd, err := l.cwd(source.Cwd)
	if err != nil {
		return nil, err
	}

	if source.Path != "" {
		path := source.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		return l.read(path)
	}

	path, ok := l.find(cwd)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigurationNotFound, "no manifest in any parent directory"), "cwd", cwd)
	}
	return l.read(path)
}

func (l *Loader) cwd(dir string) (string, error) {
	if dir == "" {
		wd, err := l.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", dir)
	}
	return abs, nil
}

// find walks from dir to the filesystem root and returns the first manifest file.
func (l *Loader) find(dir string) (string, bool) {
	currentDir := dir
	for {
		for _, name := range manifestNames {
			candidate := filepath.Join(currentDir, name)
			if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) read(path string) (*domain.Manifest, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigurationNotFound, "manifest file does not exist"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	m.Path = path

	if l.Logger != nil {
		l.Logger.Debug("loaded manifest", "path", path, "sections", len(m.Sections()))
	}
	return m, nil
}
