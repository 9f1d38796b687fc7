package cli

import (
	"context"

	"github.com/spade-lang/spade-docker/internal/prune"
)

// Represents the 'spade-docker clean' command.
type CleanCmd struct{}

// Executes the clean command.
//
// Removes every recorded image that carries this tool's ownership label and
// shrinks the record log accordingly.
func (c *CleanCmd) Run(ctx context.Context) error {
	store, client, cfg, err := bootstrap()
	if err != nil {
		return err
	}

	policy, err := prune.ParsePolicy(cfg.Prune.MissingImages)
	if err != nil {
		return err
	}

	return prune.New(client, client, store, policy).Run(ctx)
}
