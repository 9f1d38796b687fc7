package build

import "fmt"

// Target architecture for a toolchain image.
//
// Must be supported by both the Rust base image and Zig's release binaries.
type Architecture string

const (
	ArchX8664   Architecture = "x86_64"
	ArchAarch64 Architecture = "aarch64"
)

// Parses an architecture token.
func ParseArchitecture(s string) (Architecture, error) {
	switch a := Architecture(s); a {
	case ArchX8664, ArchAarch64:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArchitecture, s)
}

// Version of Zig installed into the toolchain image.
//
// See the Zig releases page for available versions.
type ZigVersion string

const ZigV0130 ZigVersion = "0.13.0"

// Version of Zig used when none is requested.
const DefaultZigVersion = ZigV0130

// Parses a Zig version token.
func ParseZigVersion(s string) (ZigVersion, error) {
	switch v := ZigVersion(s); v {
	case ZigV0130:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownZigVersion, s)
}

// Parameters injected into the builder as build-time variables.
//
// The revision strings are opaque: they are validated by the CLI layer and
// passed through to the builder untouched.
type Arguments struct {
	Architecture Architecture // Target architecture.
	ZigVersion   ZigVersion   // Zig release to install.
	SpadeRev     string       // Spade revision to package.
	SwimRev      string       // Swim revision to package.
}

// Renders the arguments as --build-arg flags for the builder invocation.
func (a Arguments) BuildArgs() []string {
	return []string{
		"--build-arg", "TARGET_PLATFORM=" + string(a.Architecture),
		"--build-arg", "ZIG_VERSION=" + string(a.ZigVersion),
		"--build-arg", "SPADE_REV=" + a.SpadeRev,
		"--build-arg", "SWIM_REV=" + a.SwimRev,
	}
}
