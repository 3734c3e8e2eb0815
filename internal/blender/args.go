package blender

import (
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/vk/cube2sphere/internal/fsutil"
	"github.com/vk/cube2sphere/internal/stitch"
)

// renderEngine is the engine the projector scene was authored for.
const renderEngine = "CYCLES"

// composeArgs builds the Blender argv for one request. The fixed flags load
// the projector scene headless; everything after "--" is consumed by the
// scene-side init script: six absolute face paths, then width, height, and
// the three rotation angles in radians.
func composeArgs(req *stitch.Request, scenePath, initScriptPath string) []string {
	args := []string{
		"-E", renderEngine,
		"--background",
		"-noaudio",
		"-b", scenePath,
		"-o", fsutil.Absolutize(req.Output),
	}
	if req.Format != "" {
		args = append(args, "-F", req.Format)
	}
	args = append(args,
		"-x", "1",
		"-P", initScriptPath,
	)
	if req.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(req.Threads))
	}

	args = append(args, "--")
	args = append(args, lo.Map(req.Faces[:], func(face string, _ int) string {
		return fsutil.Absolutize(face)
	})...)
	args = append(args,
		strconv.Itoa(req.Width),
		strconv.Itoa(req.Height),
		formatAngle(req.RotationX),
		formatAngle(req.RotationY),
		formatAngle(req.RotationZ),
	)
	return args
}

// formatAngle renders a rotation given in degrees as radians, the unit the
// scene expects.
func formatAngle(degrees float64) string {
	return strconv.FormatFloat(degrees*math.Pi/180, 'f', -1, 64)
}
