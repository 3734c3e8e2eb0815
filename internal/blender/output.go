package blender

import (
	"strings"

	"github.com/vk/cube2sphere/internal/fsutil"
	"github.com/vk/cube2sphere/internal/stitch"
)

// frameSuffix is what Blender appends to the output basename: the projector
// scene renders exactly frame 1, zero-padded to four digits.
const frameSuffix = "0001"

// formatExtensions maps Blender format names to the extension Blender picks
// when "-x 1" asks it to append one.
var formatExtensions = map[string]string{
	"TGA":                 ".tga",
	"RAWTGA":              ".tga",
	"PNG":                 ".png",
	"JPEG":                ".jpg",
	"JPEG2000":            ".jp2",
	"BMP":                 ".bmp",
	"IRIS":                ".rgb",
	"CINEON":              ".cin",
	"DPX":                 ".dpx",
	"OPEN_EXR":            ".exr",
	"OPEN_EXR_MULTILAYER": ".exr",
	"HDR":                 ".hdr",
	"TIFF":                ".tif",
	"WEBP":                ".webp",
}

// OutputPath predicts the file Blender writes for a basename and format.
// The naming convention is owned by Blender; this mirrors it so the caller
// can be told where the map landed. The bundled projector scene is saved
// with TGA output settings, so an empty format resolves the same way as an
// explicit "TGA". Formats this table does not know keep the frame suffix
// but no extension; callers should treat the path as opaque either way.
func OutputPath(basename, format string) string {
	if format == "" {
		format = stitch.DefaultFormat
	}
	base := fsutil.Absolutize(basename) + frameSuffix
	if ext, ok := formatExtensions[strings.ToUpper(format)]; ok {
		return base + ext
	}
	return base
}
