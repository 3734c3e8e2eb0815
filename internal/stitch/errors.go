package stitch

import (
	"fmt"
	"strings"
)

// InvalidInputError reports a request that failed validation before any
// renderer process was started. The caller can correct the inputs and retry.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// RendererNotFoundError reports that the renderer executable could not be
// located or started at all.
type RendererNotFoundError struct {
	Path string
	Err  error
}

func (e *RendererNotFoundError) Error() string {
	return fmt.Sprintf("renderer %q could not be started: %v", e.Path, e.Err)
}

func (e *RendererNotFoundError) Unwrap() error { return e.Err }

// RendererExecutionError reports a renderer process that started but exited
// with a non-zero status. Stderr holds whatever diagnostic text the process
// produced.
type RendererExecutionError struct {
	ExitCode int
	Stderr   string
}

func (e *RendererExecutionError) Error() string {
	msg := fmt.Sprintf("renderer exited with code %d", e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
