package shaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelglue/quadview/lib/config"
)

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.glsl")
	require.NoError(t, os.WriteFile(path, []byte("#version 410 core\n"), 0o644))

	src, err := LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\n", src)
}

func TestLoadSourceMissingFile(t *testing.T) {
	_, err := LoadSource("/does/not/exist.glsl")
	assert.Error(t, err)
}

func TestLoadPairFallsBackToEmbedded(t *testing.T) {
	cfg := &config.ShaderCfg{
		Vertex:   "/does/not/exist/vert.glsl",
		Fragment: "/does/not/exist/frag.glsl",
	}

	vert, frag := LoadPair(cfg)
	assert.Contains(t, vert, "#version 410 core")
	assert.Contains(t, vert, "gl_Position")
	assert.Contains(t, frag, "#version 410 core")
	assert.Contains(t, frag, "v_colour")
}

func TestLoadPairPrefersConfiguredFiles(t *testing.T) {
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "v.glsl")
	fragPath := filepath.Join(dir, "f.glsl")
	require.NoError(t, os.WriteFile(vertPath, []byte("// custom vertex\n"), 0o644))
	require.NoError(t, os.WriteFile(fragPath, []byte("// custom fragment\n"), 0o644))

	vert, frag := LoadPair(&config.ShaderCfg{Vertex: vertPath, Fragment: fragPath})
	assert.Equal(t, "// custom vertex\n", vert)
	assert.Equal(t, "// custom fragment\n", frag)
}

func TestDefaultShadersDeclareBothAttributes(t *testing.T) {
	vert := defaultSource("vert.glsl")
	assert.Contains(t, vert, "layout(location = 0) in vec3 position")
	assert.Contains(t, vert, "layout(location = 1) in vec3 vertexColour")
}
