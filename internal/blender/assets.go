package blender

import (
	_ "embed"
	"os"
	"path/filepath"
)

// initScript is the scene-side Python hook Blender executes with -P. It
// reads the arguments after "--" and points the projector scene's textures,
// resolution, and rotation at the request before triggering the render.
//
//go:embed assets/init.py
var initScript []byte

// sceneFileName is the bundled projector scene. It ships alongside the
// executable and is never modified at runtime.
const sceneFileName = "projector.blend"

// defaultScenePath locates the bundled projector scene next to the running
// executable. Falls back to the bare name, resolved against the working
// directory by Blender itself.
func defaultScenePath() string {
	exe, err := os.Executable()
	if err != nil {
		return sceneFileName
	}
	return filepath.Join(filepath.Dir(exe), sceneFileName)
}

// materializeInitScript writes the embedded init script to a temp file so
// Blender can load it, and returns the path plus a cleanup func.
func materializeInitScript() (string, func(), error) {
	f, err := os.CreateTemp("", "cube2sphere-init-*.py")
	if err != nil {
		return "", nil, err
	}
	if _, err := f.Write(initScript); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
