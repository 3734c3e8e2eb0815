// Package blender drives the external Blender process that performs the
// actual cubemap-to-equirectangular projection. The projection math lives in
// a pre-built scene; this package only composes the command line, launches
// the process, and reports where the output landed.
package blender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/vk/cube2sphere/internal/ctxlog"
	"github.com/vk/cube2sphere/internal/stitch"
)

// Options configures a Runner. The zero value is usable: the bundled scene
// default applies and verbose child output goes to the process's own
// stdout/stderr.
type Options struct {
	// Scene overrides the projector scene file handed to Blender.
	Scene string

	// Stdout and Stderr receive the child's output in verbose mode.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner invokes Blender once per conversion. It is safe for concurrent use;
// each call spawns its own independent process.
type Runner struct {
	scene  string
	stdout io.Writer
	stderr io.Writer
}

// NewRunner builds a Runner from opts.
func NewRunner(opts Options) *Runner {
	r := &Runner{
		scene:  opts.Scene,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// Convert runs one renderer invocation for req and blocks until the child
// process terminates. req must already be validated.
func (r *Runner) Convert(ctx context.Context, req *stitch.Request) (*stitch.Result, error) {
	logger := ctxlog.FromContext(ctx)

	scene := r.scene
	if scene == "" {
		scene = defaultScenePath()
	}

	initScript, cleanup, err := materializeInitScript()
	if err != nil {
		return nil, fmt.Errorf("preparing renderer init script: %w", err)
	}
	defer cleanup()

	args := composeArgs(req, scene, initScript)
	logger.Debug("Launching renderer.", "path", req.BlenderPath, "args", args)

	var stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, req.BlenderPath, args...)
	if req.Verbose {
		cmd.Stdout = r.stdout
		cmd.Stderr = io.MultiWriter(r.stderr, &stderrBuf)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Start(); err != nil {
		return nil, &stitch.RendererNotFoundError{Path: req.BlenderPath, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &stitch.RendererExecutionError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderrBuf.String(),
			}
		}
		return nil, fmt.Errorf("waiting for renderer: %w", err)
	}

	out := OutputPath(req.Output, req.Format)
	logger.Debug("Renderer finished.", "output", out)
	return &stitch.Result{OutputPath: out}, nil
}
