package manifest

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the read-only view of the disk that manifest discovery and
// the node_modules lookup walk. Paths are absolute.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// OSFS reads package.json files from the real disk.
type OSFS struct{}

// NewOSFS returns the disk-backed FileSystem.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat reports whether a manifest candidate exists.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile returns the raw manifest bytes.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- manifest paths come from options or the upward search
	return os.ReadFile(path)
}

// MapFSAdapter mounts an fs.FS (usually an fstest.MapFS of project trees)
// at Root, so absolute manifest paths can be looked up in it.
type MapFSAdapter struct {
	FS   fs.FS
	Root string
}

// NewMapFSAdapter mounts fsys at root.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// Stat looks up path below the mount point.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.mounted(path))
}

// ReadFile reads path below the mount point.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.mounted(path))
}

// mounted maps an absolute path onto the fs.FS namespace. The mount point
// itself is ".". Paths outside the mount are passed through and fail as missing,
// which ends the upward search at the top of the fixture tree.
func (m *MapFSAdapter) mounted(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	rel, err := filepath.Rel(m.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
