// Package record manages the durable log of built image identifiers.
//
// The log is a flat newline-separated text file in the tool's data
// directory: one identifier per line, no header, no checksum. A flat file
// with atomic whole-file replacement is enough here because the log is
// small (bounded by the number of images ever built) and touched once per
// CLI invocation; the write-to-temporary-then-rename pattern gives
// durability without a transaction log.
//
// Example usage:
//
//	store := record.NewStore(paths.Data())
//	log, err := store.Load()
//	if err != nil {
//	    return err
//	}
//	if err := store.Replace(log.AppendIfAbsent(digest)); err != nil {
//	    return err
//	}
package record
