package config

import (
	"fmt"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/pixelglue/quadview/lib/utils"
)

type Config struct {
	Window      *WindowCfg `yaml:"window"`
	Shaders     *ShaderCfg `yaml:"shaders"`
	ClearColour string     `yaml:"clear_colour"`
	Api         *ApiCfg    `yaml:"api"`
	GLDebug     bool       `yaml:"gl_debug"`
}

type WindowCfg struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Vsync  *bool  `yaml:"vsync"`
}

type ShaderCfg struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Watch    bool   `yaml:"watch"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}

// Default reproduces the compiled-in parameters used when no config
// file is given: a fixed 640x480 window, the shader pair under
// ./shaders, a dark blue background and no API server.
func Default() *Config {
	cfg := &Config{
		Window: &WindowCfg{
			Width:  640,
			Height: 480,
			Title:  "OpenGL Window",
		},
		Shaders: &ShaderCfg{
			Vertex:   "./shaders/vert.glsl",
			Fragment: "./shaders/frag.glsl",
		},
		ClearColour: "#080D45FF",
	}
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	m := yaml.NewDecoder(f)
	cfg := Default()
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Window == nil {
		return fmt.Errorf("a window section should be defined")
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("%dx%d is not a usable window size", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("please set a window title")
	}
	if c.Shaders == nil {
		return fmt.Errorf("a shaders section should be defined")
	}
	if c.Shaders.Vertex == "" {
		return fmt.Errorf("please set a vertex shader path")
	}
	if c.Shaders.Fragment == "" {
		return fmt.Errorf("please set a fragment shader path")
	}
	if c.ClearColour == "" {
		return fmt.Errorf("please set clear_colour in the config")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Window: %dx%d (%s)\n", c.Window.Width, c.Window.Height, c.Window.Title))
	b.WriteString(fmt.Sprintf("Shaders: %s + %s\n", c.Shaders.Vertex, c.Shaders.Fragment))
	if c.Api != nil && c.Api.Bind != "" {
		b.WriteString(fmt.Sprintf("Api: %s\n", c.Api.Bind))
	}
	return b.String()
}
