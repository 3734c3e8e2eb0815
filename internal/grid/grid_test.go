package grid

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/cube2sphere/internal/stitch"
)

func writeGridFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func defaults() stitch.Request {
	return stitch.Request{
		Width:       stitch.DefaultWidth,
		Height:      stitch.DefaultHeight,
		Output:      stitch.DefaultOutput,
		Format:      stitch.DefaultFormat,
		BlenderPath: stitch.DefaultBlenderPath,
	}
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeGridFile(t, dir, "pano.hcl", `
stitch "garden" {
  front  = "faces/front.png"
  back   = "faces/back.png"
  right  = "faces/right.png"
  left   = "faces/left.png"
  top    = "faces/top.png"
  bottom = "faces/bottom.png"

  resolution = [2048, 1024]
  rotation   = [0, 0, 90]
  format     = "PNG"
  threads    = 4
}

stitch "attic" {
  front  = "attic/front.png"
  back   = "attic/back.png"
  right  = "attic/right.png"
  left   = "attic/left.png"
  top    = "attic/top.png"
  bottom = "attic/bottom.png"

  output = "attic-map"
}
`)

	// --- Act ---
	jobs, err := Load(context.Background(), path, defaults())

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	garden := defaults()
	garden.Faces = [6]string{"faces/front.png", "faces/back.png", "faces/right.png", "faces/left.png", "faces/top.png", "faces/bottom.png"}
	garden.Width, garden.Height = 2048, 1024
	garden.RotationZ = 90
	garden.Format = "PNG"
	garden.Threads = 4
	garden.Output = "garden" // falls back to the block label

	attic := defaults()
	attic.Faces = [6]string{"attic/front.png", "attic/back.png", "attic/right.png", "attic/left.png", "attic/top.png", "attic/bottom.png"}
	attic.Output = "attic-map"

	want := []Job{
		{Name: "garden", Request: garden},
		{Name: "attic", Request: attic},
	}
	if diff := cmp.Diff(want, jobs); diff != "" {
		t.Fatalf("unexpected jobs (-want +got):\n%s", diff)
	}
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	block := `
stitch %q {
  front  = "f.png"
  back   = "b.png"
  right  = "r.png"
  left   = "l.png"
  top    = "t.png"
  bottom = "d.png"
}
`
	writeGridFile(t, dir, "a/first.hcl", fmt.Sprintf(block, "first"))
	writeGridFile(t, dir, "b/second.hcl", fmt.Sprintf(block, "second"))
	writeGridFile(t, dir, "ignored.txt", "not hcl")

	// --- Act ---
	jobs, err := Load(context.Background(), dir, defaults())

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, "first", jobs[0].Name)
	require.Equal(t, "second", jobs[1].Name)
}

func TestLoad_InvalidHCL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeGridFile(t, dir, "broken.hcl", `
stitch "broken" {
  front = "f.png"
  // missing closing brace
`)

	_, err := Load(context.Background(), path, defaults())

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingFaceAttribute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeGridFile(t, dir, "partial.hcl", `
stitch "partial" {
  front = "f.png"
  back  = "b.png"
  right = "r.png"
  left  = "l.png"
  top   = "t.png"
}
`)

	_, err := Load(context.Background(), path, defaults())

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode")
}

func TestLoad_WrongResolutionArity(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeGridFile(t, dir, "bad-res.hcl", `
stitch "bad" {
  front  = "f.png"
  back   = "b.png"
  right  = "r.png"
  left   = "l.png"
  top    = "t.png"
  bottom = "d.png"

  resolution = [2048]
}
`)

	_, err := Load(context.Background(), path, defaults())

	require.Error(t, err)
	require.Contains(t, err.Error(), "resolution expects 2 numbers")
}

func TestLoad_PathDoesNotExist(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"), defaults())

	require.Error(t, err)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), t.TempDir(), defaults())

	require.Error(t, err)
	require.Contains(t, err.Error(), "no .hcl grid files")
}
