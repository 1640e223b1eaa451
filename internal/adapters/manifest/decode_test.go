package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugload/internal/adapters/manifest"
	"go.trai.ch/plugload/internal/core/domain"
)

func TestDecode_SkipsNonSections(t *testing.T) {
	m, err := manifest.Decode([]byte(`{
  "name": "x",
  "version": "1.0.0",
  "repository": {"type": "git", "url": "https://example.com/x.git"},
  "config": {"nested": {"deep": true}},
  "dependencies": {"gulp-foo": "1.0.0", "gulp-bar": "*"}
}`))
	require.NoError(t, err)

	assert.Equal(t, "x", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Empty(t, m.Main)
	assert.Equal(t, []string{"repository", "dependencies"}, m.Sections())
	assert.Equal(t, []string{"gulp-foo", "gulp-bar"}, m.Names([]string{domain.SectionDependencies}))
}

func TestDecode_EmptySections(t *testing.T) {
	m, err := manifest.Decode([]byte(`{"dependencies": {}}`))
	require.NoError(t, err)
	assert.Empty(t, m.Names(domain.DefaultScopes()))
}
