package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/vk/cube2sphere/internal/blender"
	"github.com/vk/cube2sphere/internal/stitch"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	renderer stitch.Renderer
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger and a Blender-backed
// renderer. Tests inject a stub renderer through the variadic parameter.
func NewApp(outW io.Writer, cfg *Config, renderer ...stitch.Renderer) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	var r stitch.Renderer
	if len(renderer) > 0 && renderer[0] != nil {
		r = renderer[0]
	} else {
		r = blender.NewRunner(blender.Options{
			Scene:  cfg.ScenePath,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})
	}

	return &App{
		outW:     outW,
		logger:   logger,
		renderer: r,
		config:   cfg,
	}
}
