// Package build records the images produced by toolchain builds.
//
// A [Recorder] drives one cycle: it invokes the external builder with the
// typed [Arguments] rendered as build-time variables, recovers the written
// image's digest from the captured diagnostics, and commits it to the
// record store. Persistence happens strictly after a successful extraction,
// so an interrupted or failed build never touches the log.
package build
