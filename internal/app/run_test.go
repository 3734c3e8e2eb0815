package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/cube2sphere/internal/stitch"
)

// fakeRenderer records the requests it receives and returns a canned result
// or error.
type fakeRenderer struct {
	requests []*stitch.Request
	err      error
}

func (f *fakeRenderer) Convert(ctx context.Context, req *stitch.Request) (*stitch.Result, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &stitch.Result{OutputPath: req.Output + "0001.tga"}, nil
}

func writeFaces(t *testing.T, dir string) [6]string {
	t.Helper()
	var faces [6]string
	for i, name := range stitch.FaceOrder {
		path := filepath.Join(dir, name+".png")
		require.NoError(t, os.WriteFile(path, []byte("img"), 0o600))
		faces[i] = path
	}
	return faces
}

func TestRun_SingleRequest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	faces := writeFaces(t, t.TempDir())
	cfg, err := NewConfig(Config{
		Request:  stitch.Request{Faces: faces, Output: "pano"},
		LogLevel: "error",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	fake := &fakeRenderer{}
	application := NewApp(out, cfg, fake)

	// --- Act ---
	runErr := application.Run(context.Background())

	// --- Assert ---
	require.NoError(t, runErr)
	require.Len(t, fake.requests, 1)
	require.Equal(t, stitch.DefaultWidth, fake.requests[0].Width, "defaults should be applied before invocation")
	require.Contains(t, out.String(), "pano0001.tga")
}

func TestRun_GridJobsInOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	faces := writeFaces(t, dir)
	gridHCL := `
stitch "one" {
  front  = "` + faces[0] + `"
  back   = "` + faces[1] + `"
  right  = "` + faces[2] + `"
  left   = "` + faces[3] + `"
  top    = "` + faces[4] + `"
  bottom = "` + faces[5] + `"
}

stitch "two" {
  front  = "` + faces[0] + `"
  back   = "` + faces[1] + `"
  right  = "` + faces[2] + `"
  left   = "` + faces[3] + `"
  top    = "` + faces[4] + `"
  bottom = "` + faces[5] + `"

  resolution = [256, 128]
}
`
	gridPath := filepath.Join(dir, "jobs.hcl")
	require.NoError(t, os.WriteFile(gridPath, []byte(gridHCL), 0o600))

	cfg, err := NewConfig(Config{
		GridPath: gridPath,
		Request:  stitch.Request{Format: "PNG"},
		LogLevel: "error",
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	fake := &fakeRenderer{}
	application := NewApp(out, cfg, fake)

	// --- Act ---
	runErr := application.Run(context.Background())

	// --- Assert ---
	require.NoError(t, runErr)
	require.Len(t, fake.requests, 2)
	require.Equal(t, "one", fake.requests[0].Output)
	require.Equal(t, "two", fake.requests[1].Output)
	require.Equal(t, 256, fake.requests[1].Width)
	require.Equal(t, "PNG", fake.requests[0].Format, "grid jobs inherit flag defaults")
}

func TestRun_ValidationFailureSkipsRenderer(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	faces := writeFaces(t, t.TempDir())
	faces[2] = filepath.Join(t.TempDir(), "missing.png")
	cfg, err := NewConfig(Config{
		Request:  stitch.Request{Faces: faces},
		LogLevel: "error",
	})
	require.NoError(t, err)

	fake := &fakeRenderer{}
	application := NewApp(&bytes.Buffer{}, cfg, fake)

	// --- Act ---
	runErr := application.Run(context.Background())

	// --- Assert ---
	var invalidErr *stitch.InvalidInputError
	require.ErrorAs(t, runErr, &invalidErr)
	require.Empty(t, fake.requests, "renderer must not be invoked for invalid input")
}

func TestRun_RendererFailurePropagates(t *testing.T) {
	t.Parallel()

	faces := writeFaces(t, t.TempDir())
	cfg, err := NewConfig(Config{
		Request:  stitch.Request{Faces: faces},
		LogLevel: "error",
	})
	require.NoError(t, err)

	fake := &fakeRenderer{err: &stitch.RendererExecutionError{ExitCode: 1, Stderr: "boom"}}
	application := NewApp(&bytes.Buffer{}, cfg, fake)

	runErr := application.Run(context.Background())

	var execErr *stitch.RendererExecutionError
	require.ErrorAs(t, runErr, &execErr)
	require.Equal(t, 1, execErr.ExitCode)
}
