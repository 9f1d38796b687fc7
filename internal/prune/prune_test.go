package prune

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/containerd/errdefs"
	v1 "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/spade-lang/spade-docker/internal/docker"
	"github.com/spade-lang/spade-docker/internal/record"
)

var ownedLabels = map[string]string{"tool": "spade-docker"}

// Pretends to be the image backend: identifiers absent from labels do not
// exist, the rest inspect to the given label set.
type fakeBackend struct {
	labels    map[string]map[string]string
	removeErr map[string]error
	removed   []string
}

func (f *fakeBackend) Inspect(_ context.Context, id string) (*docker.Inspection, error) {
	labels, ok := f.labels[id]
	if !ok {
		return nil, fmt.Errorf("%w: image %s", errdefs.ErrNotFound, id)
	}
	return &docker.Inspection{ID: id, Config: v1.ImageConfig{Labels: labels}}, nil
}

func (f *fakeBackend) Remove(_ context.Context, id string) error {
	if err := f.removeErr[id]; err != nil {
		return err
	}
	f.removed = append(f.removed, id)
	return nil
}

func newTestStore(t *testing.T, log record.Log) *record.Store {
	t.Helper()
	store := record.NewStore(t.TempDir())
	if err := store.Replace(log); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	return store
}

func persisted(t *testing.T, store *record.Store) record.Log {
	t.Helper()
	log, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return log
}

func TestPruneKeepsUnownedRemovesOwned(t *testing.T) {
	store := newTestStore(t, record.Log{"a", "b", "c"})
	backend := &fakeBackend{
		labels: map[string]map[string]string{
			"a": {},
			"b": ownedLabels,
			"c": ownedLabels,
		},
	}

	if err := New(backend, backend, store, MissingPrune).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !slices.Equal(backend.removed, []string{"b", "c"}) {
		t.Fatalf("removed = %v, want [b c] in stored order", backend.removed)
	}
	if got := persisted(t, store); !slices.Equal(got, record.Log{"a"}) {
		t.Fatalf("persisted log = %v, want [a]", got)
	}
}

// A removal late in the run must not lose the shrinks already persisted for
// earlier removals, and must leave the failing identifier recorded.
func TestPruneShrinksAfterEachRemoval(t *testing.T) {
	store := newTestStore(t, record.Log{"a", "b", "c"})
	removalFailed := errors.New("image in use")
	backend := &fakeBackend{
		labels: map[string]map[string]string{
			"a": {},
			"b": ownedLabels,
			"c": ownedLabels,
		},
		removeErr: map[string]error{"c": removalFailed},
	}

	err := New(backend, backend, store, MissingPrune).Run(context.Background())
	if !errors.Is(err, removalFailed) {
		t.Fatalf("err = %v, want %v", err, removalFailed)
	}

	if got := persisted(t, store); !slices.Equal(got, record.Log{"a", "c"}) {
		t.Fatalf("persisted log = %v, want [a c]", got)
	}
}

func TestPruneMissingImagePruned(t *testing.T) {
	store := newTestStore(t, record.Log{"gone", "b"})
	backend := &fakeBackend{
		labels: map[string]map[string]string{"b": ownedLabels},
	}

	if err := New(backend, backend, store, MissingPrune).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !slices.Equal(backend.removed, []string{"b"}) {
		t.Fatalf("removed = %v, want [b]", backend.removed)
	}
	if got := persisted(t, store); len(got) != 0 {
		t.Fatalf("persisted log = %v, want empty", got)
	}
}

func TestPruneMissingImageFailPolicy(t *testing.T) {
	store := newTestStore(t, record.Log{"gone", "b"})
	backend := &fakeBackend{
		labels: map[string]map[string]string{"b": ownedLabels},
	}

	err := New(backend, backend, store, MissingFail).Run(context.Background())
	if !errdefs.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}

	if len(backend.removed) != 0 {
		t.Fatalf("removed = %v, want nothing", backend.removed)
	}
	if got := persisted(t, store); !slices.Equal(got, record.Log{"gone", "b"}) {
		t.Fatalf("persisted log = %v, want untouched", got)
	}
}

func TestPruneEmptyLog(t *testing.T) {
	store := record.NewStore(t.TempDir())
	backend := &fakeBackend{}

	if err := New(backend, backend, store, MissingPrune).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(backend.removed) != 0 {
		t.Fatalf("removed = %v, want nothing", backend.removed)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    MissingImagePolicy
		wantErr bool
	}{
		{input: "", want: MissingPrune},
		{input: "prune", want: MissingPrune},
		{input: "fail", want: MissingFail},
		{input: "ignore", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPolicy) {
				t.Fatalf("ParsePolicy(%q) err = %v, want ErrUnknownPolicy", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
