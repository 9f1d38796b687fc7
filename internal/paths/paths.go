package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "spade-docker"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory holding the record log.
//
//	Linux:   $XDG_DATA_HOME/spade-docker or ~/.local/share/spade-docker
//	macOS:   ~/Library/Application Support/spade-docker
func Data() string {
	return filepath.Join(xdg.DataHome, toolName)
}

// Path to the optional user configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/spade-docker/config.yaml
//	macOS:   ~/Library/Application Support/spade-docker/config.yaml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.yaml")
}
