package rendering

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Debug turns the per-call error sweep on. The sweep is observational:
// errors are logged with the call and call site and execution carries
// on regardless.
var Debug bool

// ClearErrors drains the GL error queue so a following CheckErrors
// only reports errors from the call in between.
func ClearErrors() {
	if !Debug {
		return
	}
	for gl.GetError() != gl.NO_ERROR {
	}
}

// CheckErrors logs every queued GL error against the given call text.
// Returns true if at least one error was queued.
func CheckErrors(call string) bool {
	if !Debug {
		return false
	}
	found := false
	for {
		e := gl.GetError()
		if e == gl.NO_ERROR {
			break
		}
		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file, line = "?", 0
		}
		log.Printf("OpenGL error %s after %s (%s:%d)", ErrorName(e), call, filepath.Base(file), line)
		found = true
	}
	return found
}

func ErrorName(e uint32) string {
	switch e {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", e)
	}
}
