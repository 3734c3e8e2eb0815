// Package version exposes the build version reported by the --version flag.
package version

// Version is the release version. Overridden at build time via
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.3.0"
