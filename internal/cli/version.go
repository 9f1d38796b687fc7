package cli

import (
	"context"
	"fmt"

	"github.com/spade-lang/spade-docker/internal"
)

// Represents the 'spade-docker version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
