// Package config reads the optional plugload.yaml options file.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/plugload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileOptionsLoader loads the options file from a working directory.
type FileOptionsLoader struct {
	Filename string
	Logger   ports.Logger
}

// NewFileOptionsLoader creates a loader for domain.OptionsFileName.
func NewFileOptionsLoader(logger ports.Logger) *FileOptionsLoader {
	return &FileOptionsLoader{Filename: domain.OptionsFileName, Logger: logger}
}

// Load reads the options file in cwd. A missing file yields empty options.
func (l *FileOptionsLoader) Load(cwd string) (domain.Options, error) {
	path := filepath.Join(cwd, l.Filename)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return domain.Options{}, nil
	}
	if l.Logger != nil {
		l.Logger.Debug("reading options file", "path", path)
	}
	return Load(path)
}

// Load reads an options file. Relative config and cwd entries are resolved
// against the directory of the file.
func Load(path string) (domain.Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Options{}, zerr.With(zerr.Wrap(domain.ErrOptionsReadFailed, err.Error()), "path", path)
	}

	file, err := Parse(data)
	if err != nil {
		return domain.Options{}, zerr.With(err, "path", path)
	}

	return file.Options(filepath.Dir(path))
}

// Parse decodes options file content. Unknown keys are rejected.
func Parse(data []byte) (*OptionsFile, error) {
	var file OptionsFile
	if len(bytes.TrimSpace(data)) == 0 {
		return &file, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, zerr.Wrap(domain.ErrOptionsParseFailed, err.Error())
	}
	return &file, nil
}

// Options converts the file into load options. baseDir anchors relative paths.
func (f *OptionsFile) Options(baseDir string) (domain.Options, error) {
	opts := domain.Options{
		Pattern:         f.Pattern,
		OverridePattern: f.OverridePattern,
		Config:          f.Config.Manifest,
		ConfigPath:      anchor(baseDir, f.Config.Path),
		Cwd:             anchor(baseDir, f.Cwd),
		Scope:           f.Scope,
		ReplaceString:   f.ReplaceString,
		Camelize:        f.Camelize,
		Lazy:            f.Lazy,
		MaintainScope:   f.MaintainScope,
		Rename:          f.Rename,
		Debug:           f.Debug,
	}

	if f.ReplaceString != "" {
		if _, err := domain.ParseReplaceRule(f.ReplaceString); err != nil {
			return domain.Options{}, zerr.With(
				zerr.Wrap(domain.ErrOptionsParseFailed, "invalid replaceString expression"),
				"replaceString", f.ReplaceString,
			)
		}
	}
	return opts, nil
}

func anchor(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
