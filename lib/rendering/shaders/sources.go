package shaders

import (
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/pixelglue/quadview/lib/config"
)

//go:embed vert.glsl frag.glsl
var defaultDir embed.FS

// LoadSource reads one shader source file fully into memory.
func LoadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read shader %s: %w", path, err)
	}
	return string(b), nil
}

func defaultSource(name string) string {
	b, err := defaultDir.ReadFile(name)
	if err != nil {
		// the embed directive guarantees both files exist
		panic(err)
	}
	return string(b)
}

func loadOrDefault(path string, name string) string {
	src, err := LoadSource(path)
	if err != nil {
		slog.Warn(
			fmt.Sprintf("%s, using built-in %s", err, name),
			slog.String("module", "shaders"),
		)
		return defaultSource(name)
	}
	return src
}

// LoadPair returns the vertex and fragment sources for the configured
// paths. A missing file is not fatal here: the embedded default for
// that stage is used instead, so a bare checkout still comes up.
func LoadPair(cfg *config.ShaderCfg) (string, string) {
	vert := loadOrDefault(cfg.Vertex, "vert.glsl")
	frag := loadOrDefault(cfg.Fragment, "frag.glsl")
	return vert, frag
}
