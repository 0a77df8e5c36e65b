// Package fileio reads whole files into memory.
//
// ReadFile deliberately has no error channel: open and read failures degrade
// to an empty (or partial) result, and callers check for emptiness. This
// mirrors how the functions are consumed by data-file loaders that treat a
// missing file and an empty file the same way. ReadFileErr exposes the
// underlying error for callers that need to tell the cases apart.
//
// ReadFileCompressed additionally decompresses payloads whose file extension
// names a supported algorithm; see the compress package for the codec set.
//
// All functions are safe to call concurrently. Concurrent reads of the same
// path are independent: there is no locking, caching or deduplication of
// in-flight reads.
package fileio
