package viewer

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pixelglue/quadview/lib/api"
	"github.com/pixelglue/quadview/lib/config"
	"github.com/pixelglue/quadview/lib/metrics"
	"github.com/pixelglue/quadview/lib/rendering"
	"github.com/pixelglue/quadview/lib/rendering/shaders"
	"github.com/pixelglue/quadview/lib/stats"
	"github.com/pixelglue/quadview/lib/utils"
	"github.com/pixelglue/quadview/lib/window"
)

// Viewer holds the whole application state: the window, the one
// program, the one quad and the quit flag. There is exactly one of
// everything for the process lifetime.
type Viewer struct {
	Cfg     *config.Config
	Window  *window.Window
	Program uint32
	Quad    *rendering.Quad
	Stats   *stats.Stats

	// ShutdownRequested is only ever set, never cleared. The render
	// loop finishes its current iteration and then stops.
	ShutdownRequested bool

	clearColour utils.Colour
	watcher     *shaders.Watcher
	saidGoodbye bool
}

func New(cfg *config.Config) *Viewer {
	return &Viewer{
		Cfg:         cfg,
		Stats:       stats.New(),
		clearColour: utils.ColourToFloat(utils.ColourParse(cfg.ClearColour)),
	}
}

// RequestShutdown sets the quit flag and says goodbye, once.
func (v *Viewer) RequestShutdown() {
	if !v.saidGoodbye {
		fmt.Println("Goodbye!")
		v.saidGoodbye = true
	}
	v.ShutdownRequested = true
}

// Run owns the full lifecycle: bootstrap, geometry, pipeline, loop,
// teardown. GPU objects are released in reverse acquisition order on
// every exit path.
func Run(cfg *config.Config) error {
	v := New(cfg)

	rendering.Debug = cfg.GLDebug

	win, err := window.New(cfg.Window)
	if err != nil {
		return err
	}
	v.Window = win
	defer win.Destroy()

	v.Quad = rendering.NewQuad()
	defer v.Quad.Delete()

	vert, frag := shaders.LoadPair(cfg.Shaders)
	v.Program, err = shaders.BuildProgram(vert, frag)
	if err != nil {
		return fmt.Errorf("could not build GL program: %w", err)
	}
	defer func() { gl.DeleteProgram(v.Program) }()

	if cfg.Shaders.Watch {
		v.watcher = shaders.WatchPair(cfg.Shaders)
	}

	SetupShortcutKeys(v)

	api.ServeInBackground(cfg.Api, v.Stats, v.RequestShutdown)

	v.loop()
	return nil
}

func (v *Viewer) loop() {
	var deltaTimer utils.DeltaTimer
	for !v.ShutdownRequested {
		glfw.PollEvents()
		if v.Window.ShouldClose() {
			v.RequestShutdown()
		}
		dt := deltaTimer.Next()

		v.maybeRebuildProgram()

		v.preDraw()
		v.draw()

		v.Window.SwapBuffers()

		// Maintenance
		v.Stats.Update(dt)
		metrics.FramesRendered.Inc()
	}
}

// preDraw resets the per-frame state. Everything here is set every
// frame so two consecutive frames issue the exact same calls.
func (v *Viewer) preDraw() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.Viewport(0, 0, int32(v.Window.Width), int32(v.Window.Height))
	c := v.clearColour
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.DEPTH_BUFFER_BIT | gl.COLOR_BUFFER_BIT)

	gl.UseProgram(v.Program)
}

func (v *Viewer) draw() {
	v.Quad.Draw()
	metrics.DrawCalls.Inc()

	gl.UseProgram(0)
}

// maybeRebuildProgram relinks the shader pair between frames when the
// watcher flagged a change. A failed rebuild keeps the previous
// program running and only logs the compiler diagnostic.
func (v *Viewer) maybeRebuildProgram() {
	if v.watcher == nil || !v.watcher.TakeChange() {
		return
	}

	vert, frag := shaders.LoadPair(v.Cfg.Shaders)
	program, err := shaders.BuildProgram(vert, frag)
	if err != nil {
		log.Printf("shader rebuild failed, keeping old program: %s", err)
		metrics.ShaderRebuilds.WithLabelValues("failed").Inc()
		return
	}

	gl.DeleteProgram(v.Program)
	v.Program = program
	log.Printf("shader program rebuilt")
	metrics.ShaderRebuilds.WithLabelValues("ok").Inc()
}
