package viewer

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupShortcutKeys wires the quit shortcuts. Quitting is the only
// input-driven behaviour there is.
func SetupShortcutKeys(v *Viewer) {
	v.Window.Glfw.SetKeyCallback(keyCallback())
}

func keyCallback() func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			if key == glfw.KeyEscape {
				w.SetShouldClose(true)
			}
			if key == glfw.KeyQ &&
				mods&glfw.ModControl != 0 &&
				mods&glfw.ModShift != 0 {
				log.Println("told to quit, exiting")
				w.SetShouldClose(true)
			}
		}
	}
}
