package cli

import (
	"context"

	"github.com/spade-lang/spade-docker/internal/build"
)

// Represents the 'spade-docker build' command.
type BuildCmd struct {
	Arch       string `short:"a" required:"" enum:"x86_64,aarch64" help:"Target architecture."`
	ZigVersion string `default:"0.13.0" help:"Version of Zig to install."`
	SpadeRev   string `required:"" help:"Revision of Spade to package."`
	SwimRev    string `required:"" help:"Revision of Swim to package."`
}

// Executes the build command.
//
// Invokes the external builder in the current directory, streams its
// diagnostics to the terminal, and records the digest of the written image.
func (c *BuildCmd) Run(ctx context.Context) error {
	arch, err := build.ParseArchitecture(c.Arch)
	if err != nil {
		return err
	}
	zig, err := build.ParseZigVersion(c.ZigVersion)
	if err != nil {
		return err
	}

	store, client, _, err := bootstrap()
	if err != nil {
		return err
	}

	recorder := build.NewRecorder(client, store)
	_, err = recorder.Run(ctx, build.Arguments{
		Architecture: arch,
		ZigVersion:   zig,
		SpadeRev:     c.SpadeRev,
		SwimRev:      c.SwimRev,
	})
	return err
}
