package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spade-lang/spade-docker/internal/paths"
)

const (

	// Canonical file holding one image identifier per line.
	logName = "hashes.txt"

	// Staging file written by Replace before the atomic rename.
	tempName = "hashes.txt.tmp"
)

// An ordered list of image identifiers (bare sha256 hex strings).
//
// Order is insertion order. It carries no ownership or priority meaning;
// identifiers are compared by exact string equality only.
type Log []string

// Returns a log extended with id, or the receiver unchanged when id is
// already present anywhere in it. The receiver is never mutated, so retried
// builds that reuse a cached layer hash record nothing new.
func (l Log) AppendIfAbsent(id string) Log {
	if slices.Contains(l, id) {
		return l
	}
	return append(slices.Clip(l), id)
}

// Manages the on-disk log of built image identifiers.
//
// The backing file is the source of truth; no state survives in memory
// between invocations. All updates go through [Store.Replace], which stages
// the new content in a temporary file and renames it over the canonical
// path, so a reader never observes a partially written log. There is no
// cross-process locking: concurrent invocations can lose each other's
// updates between Load and Replace, and the tool documents itself as
// single-concurrent-invocation.
type Store struct {
	dir string
}

// Creates a store rooted at the given directory.
//
// The directory must already exist; callers create it with
// [paths.DefaultDirMode] during startup.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Reads the stored log.
//
// A missing file yields an empty log. Empty lines are dropped, so a log
// written by Replace reads back unchanged whether or not the file carries a
// trailing newline.
func (s *Store) Load() (Log, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrEncoding, s.path())
	}

	var log Log
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			log = append(log, line)
		}
	}
	return log, nil
}

// Durably replaces the stored log with exactly the given sequence.
//
// The content is written to a temporary file in the store directory and
// renamed over the canonical path. A failed write leaves the previous log
// untouched; a failed rename may leave the temporary file behind, which is
// harmless and not cleaned up.
func (s *Store) Replace(log Log) error {
	content := strings.Join(log, "\n")
	if err := os.WriteFile(s.tempPath(), []byte(content), paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	if err := os.Rename(s.tempPath(), s.path()); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

// Path to the canonical log file.
func (s *Store) path() string {
	return filepath.Join(s.dir, logName)
}

// Path to the staging file used by Replace.
func (s *Store) tempPath() string {
	return filepath.Join(s.dir, tempName)
}
