// Provides platform-appropriate paths for the tool's persisted state.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The tool name "spade-docker" is used as the
// subdirectory under each base path.
package paths
