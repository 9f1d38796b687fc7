package prune

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/containerd/errdefs"

	"github.com/spade-lang/spade-docker/internal/docker"
	"github.com/spade-lang/spade-docker/internal/record"
)

// Retrieves image metadata from the backend.
type Inspector interface {
	Inspect(ctx context.Context, id string) (*docker.Inspection, error)
}

// Removes images from the backend.
type Remover interface {
	Remove(ctx context.Context, id string) error
}

// Controls how the pruner treats recorded identifiers whose inspection
// reports that the image no longer exists.
type MissingImagePolicy int

const (

	// Treat a missing image as already removed and drop it from the log.
	// A previous run may have removed the image and been killed before
	// persisting the shrink; the stale identifier must not wedge every
	// later prune.
	MissingPrune MissingImagePolicy = iota

	// Fail the whole run on any inspection failure.
	MissingFail
)

// Parses a missing-image policy token. The empty token selects the default
// [MissingPrune] policy.
func ParsePolicy(s string) (MissingImagePolicy, error) {
	switch s {
	case "", "prune":
		return MissingPrune, nil
	case "fail":
		return MissingFail, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Orchestrates cleanup of the images this tool has built.
type Pruner struct {
	inspector Inspector
	remover   Remover
	store     *record.Store
	policy    MissingImagePolicy
}

// Creates a pruner over the given collaborators.
func New(inspector Inspector, remover Remover, store *record.Store, policy MissingImagePolicy) *Pruner {
	return &Pruner{
		inspector: inspector,
		remover:   remover,
		store:     store,
		policy:    policy,
	}
}

// Removes every recorded image owned by this tool and shrinks the log.
//
// Identifiers are processed in stored order. Images without the ownership
// label are skipped and stay recorded. After each confirmed removal the
// remaining set is persisted through an atomic replace, so the log never
// contains an identifier whose image is confirmed gone, even if the run is
// killed between removals. Inspection failures other than "image not found"
// abort the run, as do removal failures; the identifier in question stays
// recorded. Not-found handling follows the configured [MissingImagePolicy].
func (p *Pruner) Run(ctx context.Context) error {
	log, err := p.store.Load()
	if err != nil {
		return err
	}

	slog.Info("pruning recorded images", "recorded", len(log))

	remaining := slices.Clone(log)
	for _, id := range log {
		inspection, err := p.inspector.Inspect(ctx, id)
		if err != nil {
			if p.policy == MissingPrune && errdefs.IsNotFound(err) {
				slog.Debug("image already gone", "digest", id)
				if remaining, err = p.shrink(remaining, id); err != nil {
					return err
				}
				continue
			}
			return err
		}

		if !inspection.Owned() {
			slog.Debug("keeping unowned image", "digest", id)
			continue
		}

		if err := p.remover.Remove(ctx, id); err != nil {
			return err
		}
		if remaining, err = p.shrink(remaining, id); err != nil {
			return err
		}
		slog.Info("image removed", "digest", id)
	}

	return nil
}

// Drops id from the remaining set and persists the result.
func (p *Pruner) shrink(remaining record.Log, id string) (record.Log, error) {
	remaining = slices.DeleteFunc(remaining, func(s string) bool { return s == id })
	if err := p.store.Replace(remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}
