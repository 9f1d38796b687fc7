package internal

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
)

// Tool name, used for CLI naming, directory naming, and the ownership label
// value stamped into built images.
const Name = "spade-docker"

// Placeholder for version fields that were never set at link time.
const defaultUndefined = "(undefined)"

// Version string reported by builds made outside the release pipeline.
const defaultLocalBuild = "(local)"

// Branch whose name is omitted from version strings.
const mainBranch = "main"

// Set via ldflags by the release pipeline; empty for local builds.
var (
	version   = ""
	stage     = ""
	gitCommit = ""
)

// Baked-in logging defaults, overridable per run by CLI flags. The raw
// strings are what ldflags can set; init parses them into the atomics.
var (
	rawQuiet   = "false"
	rawDebug   = "false"
	rawVerbose = "false"

	quietMode   atomic.Bool
	debugMode   atomic.Bool
	verboseMode atomic.Bool
)

func init() {
	if v, err := strconv.ParseBool(rawQuiet); err == nil {
		quietMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawDebug); err == nil {
		debugMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawVerbose); err == nil {
		verboseMode.Store(v)
	}
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Returns true if debug mode is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}

// Returns the version number, lowercased and with any "v" prefix stripped,
// or "(undefined)" when unset.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// Returns the development stage, normally the git branch the build was cut
// from, or "(undefined)" when unset.
func Stage() string {
	s := strings.TrimSpace(stage)
	if s == "" {
		return defaultUndefined
	}
	return strings.ToLower(s)
}

// Returns the git commit hash or "(undefined)" when unset.
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns true for builds made outside the release pipeline, which sets
// version, stage, and commit together; a gap in any of them means local.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(stage) == ""
}

// Returns "<version>+<stage> <git-commit> [<arch>]" for pipeline builds,
// with the stage suffix dropped on the main branch, and "(local)" otherwise.
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	s := Stage()
	if s == mainBranch {
		s = ""
	} else {
		s = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), s, GitCommit(), runtime.GOARCH)
}
