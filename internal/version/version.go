// Package version carries build identification, injected at link time via
// -ldflags "-X".
package version

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// GitSHA is the commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// String formats the build identification for -version output.
func String() string {
	return Version + " (" + GitSHA + ", built " + BuildTime + ")"
}
