// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"
	"os"
)

// File is a byte input over a file on disk.
type File struct {
	f *os.File
}

// OpenFile opens path for reading.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return &File{f: f}, nil
}

func (s *File) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

func (s *File) Seek(offset int64, whence int) (int64, error) {
	return s.f.Seek(offset, whence)
}

// Length reports the file size, or unknown when the file cannot be stated.
func (s *File) Length() (int64, bool) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// PushBackByte rewinds the read position by one byte.
func (s *File) PushBackByte(_ byte) error {
	_, err := s.f.Seek(-1, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("push back byte: %w", err)
	}
	return nil
}

func (s *File) Close() error {
	return s.f.Close()
}
