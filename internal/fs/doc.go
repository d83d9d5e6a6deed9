// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, remove, rename, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [AferoFS]: Adapter for any afero.Fs (in-memory filesystems in tests)
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// [Files] builds the whole-file operations a document store needs on top of
// a FileSystem: existence checks, reads, atomic replaces and removal.
//
// # Design Notes
//
// This package does NOT take context.Context parameters. Local filesystem
// calls are fast and not interruptible at the syscall level.
package fs
