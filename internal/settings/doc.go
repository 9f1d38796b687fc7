// Loads the optional YAML configuration file from the user's config
// directory. All keys have working defaults; the file only exists when the
// user overrides the docker binary or the prune policy.
package settings
