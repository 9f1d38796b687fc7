package build

import (
	"context"
	"log/slog"

	"github.com/spade-lang/spade-docker/internal/docker"
	"github.com/spade-lang/spade-docker/internal/record"
)

// Invokes the external image builder.
//
// Implementations stream the builder's diagnostics to the user while
// accumulating them, and return the accumulated text.
type Builder interface {
	Build(ctx context.Context, buildArgs []string) (string, error)
}

// Orchestrates one build-and-record cycle.
type Recorder struct {
	builder Builder
	store   *record.Store
}

// Creates a recorder for the given builder and store.
func NewRecorder(builder Builder, store *record.Store) *Recorder {
	return &Recorder{builder: builder, store: store}
}

// Runs the builder, extracts the digest of the image it wrote, and records
// it durably. Returns the recorded digest.
//
// The store is only written after a successful build and extraction, so any
// failure leaves the log at its pre-build content. Recording an identifier
// that is already present changes nothing. The operation is never retried;
// a failure aborts the whole invocation.
func (r *Recorder) Run(ctx context.Context, args Arguments) (string, error) {
	slog.Info("building image",
		"arch", args.Architecture,
		"zig", args.ZigVersion,
		"spade", args.SpadeRev,
		"swim", args.SwimRev,
	)

	diagnostics, err := r.builder.Build(ctx, args.BuildArgs())
	if err != nil {
		return "", err
	}

	id, err := docker.ExtractDigest(diagnostics)
	if err != nil {
		return "", err
	}

	log, err := r.store.Load()
	if err != nil {
		return "", err
	}
	if err := r.store.Replace(log.AppendIfAbsent(id)); err != nil {
		return "", err
	}

	slog.Info("image recorded", "digest", id)
	return id, nil
}
