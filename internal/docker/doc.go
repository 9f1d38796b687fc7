// Package docker drives the external docker CLI and parses its output.
//
// The tool never links a container runtime client; every interaction goes
// through the CLI's documented surface. A [Client] covers the three
// collaborators: the builder (a `docker build` whose plain-progress
// diagnostics are streamed to the user while being captured), the inspector
// (`docker image inspect`, a JSON array whose Config section follows the
// OCI image configuration schema), and the remover (`docker rmi -f`, judged
// by exit status alone).
//
// [ExtractDigest] and [Inspection.Owned] are the pure halves: the first
// recovers the written image's digest from captured diagnostics, the second
// decides whether an inspected image belongs to this tool.
package docker
