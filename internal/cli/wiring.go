package cli

import (
	"fmt"
	"os"

	"github.com/spade-lang/spade-docker/internal/docker"
	"github.com/spade-lang/spade-docker/internal/paths"
	"github.com/spade-lang/spade-docker/internal/record"
	"github.com/spade-lang/spade-docker/internal/settings"
)

// Creates the collaborators shared by the build and clean commands.
//
// Ensures the data directory exists, loads the optional user settings, and
// wires the record store and docker client. The store is rooted at an
// explicit directory so tests can point it at a temporary location.
func bootstrap() (*record.Store, *docker.Client, settings.Settings, error) {
	if err := os.MkdirAll(paths.Data(), paths.DefaultDirMode); err != nil {
		return nil, nil, settings.Settings{}, fmt.Errorf("create data directory: %w", err)
	}

	cfg, err := settings.Load(paths.ConfigFile())
	if err != nil {
		return nil, nil, settings.Settings{}, err
	}

	store := record.NewStore(paths.Data())
	client := docker.NewClient(cfg.Docker, os.Stderr)

	return store, client, cfg, nil
}
