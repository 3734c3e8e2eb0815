package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vk/cube2sphere/internal/app"
	"github.com/vk/cube2sphere/internal/stitch"
	"github.com/vk/cube2sphere/internal/version"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// A .env file in the working directory may supply executable and scene
	// defaults. Its absence is fine.
	_ = godotenv.Load()
	blenderDefault := stitch.DefaultBlenderPath
	if v := os.Getenv("CUBE2SPHERE_BLENDER"); v != "" {
		blenderDefault = v
	}
	sceneDefault := os.Getenv("CUBE2SPHERE_SCENE")

	flagSet := flag.NewFlagSet("cube2sphere", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
cube2sphere - Maps six cube (cubemap, skybox) faces into an equirectangular
(cylindrical projection, skysphere) map by driving an external Blender render.

Usage:
  cube2sphere [options] <front> <back> <right> <left> <top> <bottom>
  cube2sphere [options] --grid GRID_PATH

Arguments:
  The six positional arguments are the source cube face image files, in the
  fixed order front, back, right, left, top, bottom. GRID_PATH is a .hcl grid
  file, or a directory containing .hcl grid files, declaring batch jobs.

Options:
`)
		flagSet.PrintDefaults()
	}

	resolution := &dimsValue{w: stitch.DefaultWidth, h: stitch.DefaultHeight}
	flagSet.Var(resolution, "r", "resolution for the rendered map, as <width>x<height>")
	flagSet.Var(resolution, "resolution", "resolution for the rendered map (long form)")

	rotation := &tripleValue{}
	flagSet.Var(rotation, "R", "rotation in degrees to apply before rendering, as <rx>,<ry>,<rz> (z is up)")
	flagSet.Var(rotation, "rotation", "rotation in degrees (long form)")

	var outputPath string
	flagSet.StringVar(&outputPath, "o", stitch.DefaultOutput, "basename for the rendered map")
	flagSet.StringVar(&outputPath, "output", stitch.DefaultOutput, "basename for the rendered map (long form)")

	var format string
	flagSet.StringVar(&format, "f", stitch.DefaultFormat, `format to save the map with, e.g. "PNG" or "TGA"`)
	flagSet.StringVar(&format, "format", stitch.DefaultFormat, "output format (long form)")

	var blenderPath string
	flagSet.StringVar(&blenderPath, "b", blenderDefault, "path to the Blender executable")
	flagSet.StringVar(&blenderPath, "blender-path", blenderDefault, "path to the Blender executable (long form)")

	var threads int
	flagSet.IntVar(&threads, "t", 0, "number of render threads, 1-64 (0 lets Blender pick)")
	flagSet.IntVar(&threads, "threads", 0, "number of render threads (long form)")

	var verbose bool
	flagSet.BoolVar(&verbose, "V", false, "stream Blender's own diagnostic output")
	flagSet.BoolVar(&verbose, "verbose", false, "stream Blender's diagnostic output (long form)")

	var gridPath string
	flagSet.StringVar(&gridPath, "g", "", "path to a grid file or directory of batch jobs")
	flagSet.StringVar(&gridPath, "grid", "", "path to a grid file or directory (long form)")

	scenePath := flagSet.String("scene", sceneDefault, "override the bundled projector scene file")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var showVersion bool
	flagSet.BoolVar(&showVersion, "v", false, "print the version and exit")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit (long form)")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if showVersion {
		fmt.Fprintln(output, "cube2sphere "+version.Version)
		return nil, true, nil
	}

	faces := flagSet.Args()
	if gridPath == "" && len(faces) == 0 {
		slog.Debug("No faces or grid path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if gridPath != "" && len(faces) > 0 {
		return nil, false, &ExitError{Code: 2, Message: "positional cube faces and --grid are mutually exclusive"}
	}
	if gridPath == "" && len(faces) != 6 {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("expected six cube face images (front back right left top bottom), got %d", len(faces)),
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	req := stitch.Request{
		Width:       resolution.w,
		Height:      resolution.h,
		RotationX:   rotation.x,
		RotationY:   rotation.y,
		RotationZ:   rotation.z,
		Output:      outputPath,
		Format:      format,
		BlenderPath: blenderPath,
		Threads:     threads,
		Verbose:     verbose,
	}
	copy(req.Faces[:], faces)

	config, err := app.NewConfig(app.Config{
		GridPath:  gridPath,
		Request:   req,
		ScenePath: *scenePath,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
