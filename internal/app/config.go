package app

import (
	"errors"

	"github.com/vk/cube2sphere/internal/stitch"
)

// Config holds everything an App instance needs for one invocation.
type Config struct {
	// GridPath points at a batch grid file or directory. Empty means a
	// single ad-hoc conversion described by Request.
	GridPath string

	// Request carries the flag values. In single mode its faces are filled
	// in from the positional arguments; in grid mode it supplies the
	// defaults each stitch block inherits.
	Request stitch.Request

	// ScenePath overrides the bundled projector scene.
	ScenePath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the mode selection. Field-level request validation is
// deferred to just before invocation, when face existence is actually
// checked.
func NewConfig(cfg Config) (*Config, error) {
	hasFaces := cfg.Request.Faces[0] != ""
	if cfg.GridPath == "" && !hasFaces {
		return nil, errors.New("either six cube face images or a grid path must be provided")
	}
	if cfg.GridPath != "" && hasFaces {
		return nil, errors.New("positional cube faces and a grid path are mutually exclusive")
	}
	return &cfg, nil
}
