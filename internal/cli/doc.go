// Parses flags and wires the commands for the spade-docker CLI.
//
// The CLI accepts the following subcommands:
//
//	build     Build a new toolchain image and record its digest.
//	clean     Remove the images this tool has built.
//	version   Show version information.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// selected command runs. An interrupt cancels the bound context, which
// terminates any running docker child process.
package cli
