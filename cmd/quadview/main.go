package main

import (
	stdlog "log"
	"log/slog"
	"os"
	"runtime"

	"github.com/pixelglue/quadview/lib/config"
	"github.com/pixelglue/quadview/lib/log"
	"github.com/pixelglue/quadview/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	slog.SetDefault(slog.New(log.NewHandler(nil)))

	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			stdlog.Fatal(err)
		}
	}

	err := viewer.Run(cfg)
	if err != nil {
		stdlog.Fatal(err)
	}
}
