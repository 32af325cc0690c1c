// SPDX-License-Identifier: EPL-2.0

// Package stream provides the byte stream capability implementations the
// decoder and encoder backends are opened against.
//
// Inputs implement audio.ByteInput:
//   - Bytes: a read-only view over an in-memory buffer
//   - File: a wrapper over an os.File
//
// Outputs implement audio.ByteOutput:
//   - Buffer: a growable, seekable in-memory sink
//   - FileOutput: a file sink with atomic commit
//
// # Atomic commit
//
// FileOutput writes to a sibling "<dest>.tmp" file and renames it over the
// destination on Commit, so the destination path is either fully replaced
// or left untouched. Closing an uncommitted output deletes the temporary
// file (best effort). AtomicFileWriter is the underlying scoped resource
// and can be used directly by callers with their own framing.
package stream
