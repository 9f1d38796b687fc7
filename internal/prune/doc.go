// Package prune removes recorded images that carry the ownership label.
//
// The pruner walks the record log in stored order, asks the inspector for
// each image's metadata, and removes the ones this tool owns. Every
// confirmed removal is followed by an atomic re-persist of the remaining
// identifiers: skipped (unowned) images stay recorded, removed ones never
// survive a crash. Images that the backend no longer knows about are
// handled according to a configurable policy, since a removal can succeed
// in the backend while the process dies before persisting the shrink.
package prune
