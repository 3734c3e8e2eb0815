// Package stitch defines the conversion request handed to a renderer: six
// cube face images, the target equirectangular resolution, and the knobs the
// external renderer understands. A request is built once, validated, used
// for a single invocation, and discarded.
package stitch

import (
	"context"
	"fmt"

	"github.com/vk/cube2sphere/internal/fsutil"
)

// FaceOrder is the positional order in which the six cube faces are
// supplied, both on the command line and to the renderer.
var FaceOrder = [6]string{"front", "back", "right", "left", "top", "bottom"}

// Defaults applied by NewRequest for zero-valued fields.
const (
	DefaultWidth       = 1024
	DefaultHeight      = 512
	DefaultOutput      = "out"
	DefaultFormat      = "TGA"
	DefaultBlenderPath = "blender"

	MinThreads = 1
	MaxThreads = 64
)

// Request describes one cubemap-to-equirectangular conversion.
type Request struct {
	// Faces holds the six face image paths in FaceOrder. Each must name an
	// existing file at validation time.
	Faces [6]string

	// Width and Height are the output map resolution in pixels.
	Width  int
	Height int

	// Rotation in degrees around each axis, applied before rendering
	// (z is up).
	RotationX float64
	RotationY float64
	RotationZ float64

	// Output is the basename the renderer writes to. The renderer appends
	// its own frame suffix and extension.
	Output string

	// Format names the output image format, e.g. "PNG" or "TGA". Passed
	// through to the renderer unvalidated; empty means the renderer's
	// scene default.
	Format string

	// BlenderPath is the renderer executable. A bare name is resolved via
	// the executable search path at invocation time, never earlier.
	BlenderPath string

	// Threads limits the renderer's render threads. Zero means the
	// renderer picks.
	Threads int

	// Verbose streams the renderer's own diagnostic output to the console.
	Verbose bool
}

// Result reports a completed conversion.
type Result struct {
	// OutputPath is the file the renderer wrote. Its numeric suffix and
	// extension follow the renderer's own naming convention and should be
	// treated as opaque by callers.
	OutputPath string
}

// Renderer turns a validated request into a rendered map. Implementations
// are synchronous: one call maps to exactly one external invocation, with no
// retries.
type Renderer interface {
	Convert(ctx context.Context, req *Request) (*Result, error)
}

// NewRequest fills in defaults for zero-valued fields and validates the
// result. Defaults live here, on the value, rather than in any package-wide
// mutable state.
func NewRequest(req Request) (*Request, error) {
	if req.Width == 0 && req.Height == 0 {
		req.Width, req.Height = DefaultWidth, DefaultHeight
	}
	if req.Output == "" {
		req.Output = DefaultOutput
	}
	if req.BlenderPath == "" {
		req.BlenderPath = DefaultBlenderPath
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate checks the request invariants. It is called immediately before a
// renderer invocation so face existence reflects the state of the filesystem
// at launch time.
func (r *Request) Validate() error {
	for i, face := range r.Faces {
		if face == "" {
			return &InvalidInputError{Reason: fmt.Sprintf("missing %s cube face", FaceOrder[i])}
		}
		if !fsutil.IsFile(face) {
			return &InvalidInputError{Reason: fmt.Sprintf("%s cube face %q is not an existing file", FaceOrder[i], face)}
		}
	}
	if r.Width <= 0 || r.Height <= 0 {
		return &InvalidInputError{Reason: fmt.Sprintf("resolution must be positive, got %dx%d", r.Width, r.Height)}
	}
	if r.Threads != 0 && (r.Threads < MinThreads || r.Threads > MaxThreads) {
		return &InvalidInputError{Reason: fmt.Sprintf("threads must be in range %d-%d, got %d", MinThreads, MaxThreads, r.Threads)}
	}
	return nil
}
