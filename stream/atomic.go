// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"os"
)

// AtomicFileWriter guarantees a destination file is either fully replaced
// with new content or left untouched. Content accumulates in a "<dest>.tmp"
// sibling; Commit flushes, closes and renames it over the destination,
// exactly once. Closing an uncommitted writer deletes the temporary file
// (best effort, failures swallowed).
//
// Two writers for the same destination must not exist concurrently; callers
// serialize access per destination path.
type AtomicFileWriter struct {
	path      string
	tmpPath   string
	f         *os.File
	committed bool
}

// NewAtomicFileWriter creates the temporary file for path and opens it for
// writing.
func NewAtomicFileWriter(path string) (*AtomicFileWriter, error) {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("create temporary file: %w", err)
	}
	return &AtomicFileWriter{path: path, tmpPath: tmpPath, f: f}, nil
}

// File exposes the open temporary file handle for writing and seeking.
func (w *AtomicFileWriter) File() *os.File {
	return w.f
}

// Commit makes the written content visible at the destination path.
// Repeat calls are no-ops.
func (w *AtomicFileWriter) Commit() error {
	if w.committed {
		return nil
	}
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		return fmt.Errorf("flush temporary file: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		return fmt.Errorf("commit output file: %w", err)
	}
	w.committed = true
	return nil
}

// Close discards the temporary file unless Commit already ran. Cleanup
// failures are swallowed; a later write to the same destination will fail
// loudly on its own.
func (w *AtomicFileWriter) Close() error {
	if w.committed {
		return nil
	}
	w.f.Close()
	os.Remove(w.tmpPath)
	return nil
}

// FileOutput is a byte output that commits atomically through an
// AtomicFileWriter.
type FileOutput struct {
	writer *AtomicFileWriter
}

// CreateFile begins writing a new output file at path.
func CreateFile(path string) (*FileOutput, error) {
	w, err := NewAtomicFileWriter(path)
	if err != nil {
		return nil, err
	}
	return &FileOutput{writer: w}, nil
}

func (s *FileOutput) Write(p []byte) (int, error) {
	if s.writer.committed {
		return 0, ErrCommitted
	}
	return s.writer.File().Write(p)
}

func (s *FileOutput) Seek(offset int64, whence int) (int64, error) {
	if s.writer.committed {
		return 0, ErrCommitted
	}
	return s.writer.File().Seek(offset, whence)
}

func (s *FileOutput) Commit() error {
	return s.writer.Commit()
}

func (s *FileOutput) Close() error {
	return s.writer.Close()
}
