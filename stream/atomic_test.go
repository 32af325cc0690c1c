// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileOutput_CommitMakesFileVisible(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v, want nil", err)
	}
	defer out.Close()

	if _, err := out.Write([]byte("payload")); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	// Nothing visible at the destination before Commit.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("destination exists before Commit(): stat err = %v", err)
	}

	if err := out.Commit(); err != nil {
		t.Fatalf("Commit() error = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading committed file: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("committed content = %q, want %q", data, "payload")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file survives Commit(): stat err = %v", err)
	}
}

func TestFileOutput_CommitIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v, want nil", err)
	}
	defer out.Close()

	if _, err := out.Write([]byte("x")); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if err := out.Commit(); err != nil {
		t.Fatalf("Commit() error = %v, want nil", err)
	}
	if err := out.Commit(); err != nil {
		t.Fatalf("second Commit() error = %v, want nil", err)
	}

	if _, err := out.Write([]byte("y")); !errors.Is(err, ErrCommitted) {
		t.Errorf("Write() after Commit() error = %v, want ErrCommitted", err)
	}
	if _, err := out.Seek(0, 0); !errors.Is(err, ErrCommitted) {
		t.Errorf("Seek() after Commit() error = %v, want ErrCommitted", err)
	}
}

func TestFileOutput_CloseWithoutCommitDiscards(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v, want nil", err)
	}

	if _, err := out.Write([]byte("half-written")); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("destination exists after discard: stat err = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file survives discard: stat err = %v", err)
	}
}

func TestFileOutput_CloseAfterCommitKeepsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v, want nil", err)
	}

	if _, err := out.Write([]byte("done")); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if err := out.Commit(); err != nil {
		t.Fatalf("Commit() error = %v, want nil", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("destination missing after Commit()+Close(): %v", err)
	}
}

func TestFileOutput_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := os.WriteFile(path, []byte("old content"), 0o644); err != nil {
		t.Fatalf("seeding destination: %v", err)
	}

	out, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v, want nil", err)
	}
	defer out.Close()

	if _, err := out.Write([]byte("new")); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if err := out.Commit(); err != nil {
		t.Fatalf("Commit() error = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("destination = %q, want %q", data, "new")
	}
}

func TestFileOutput_AbortLeavesExistingFileUntouched(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := os.WriteFile(path, []byte("old content"), 0o644); err != nil {
		t.Fatalf("seeding destination: %v", err)
	}

	out, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v, want nil", err)
	}
	if _, err := out.Write([]byte("partial")); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if string(data) != "old content" {
		t.Errorf("destination = %q, want %q", data, "old content")
	}
}
