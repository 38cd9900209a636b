package window

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pixelglue/quadview/lib/config"
)

// Window owns the one GLFW window and the GL context bound to it.
type Window struct {
	Glfw *glfw.Window

	Width  int
	Height int
}

// New initialises GLFW, opens the window and makes its GL context
// current. The GL function table is loaded here as well, so GL calls
// are valid as soon as New returns.
func New(cfg *config.WindowCfg) (*Window, error) {
	w := &Window{Width: cfg.Width, Height: cfg.Height}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	win.SetPos(0, 0)
	win.MakeContextCurrent()

	if cfg.Vsync == nil || *cfg.Vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	err = gl.Init()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	w.Glfw = win
	w.logVersionInfo()
	return w, nil
}

func (w *Window) logVersionInfo() {
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	glsl := gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))

	log.Printf("OpenGL vendor '%s'", vendor)
	log.Printf("OpenGL renderer '%s'", renderer)
	log.Printf("OpenGL version '%s'", version)
	log.Printf("OpenGL shading language '%s'", glsl)
}

func (w *Window) SwapBuffers() {
	w.Glfw.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.Glfw.ShouldClose()
}

// Destroy tears the window and the whole GLFW subsystem down. After
// this no GL call is valid any more.
func (w *Window) Destroy() {
	w.Glfw.Destroy()
	glfw.Terminate()
}
