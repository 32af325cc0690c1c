// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"io"
	"testing"
)

func TestBytes_ReadAll(t *testing.T) {
	t.Parallel()

	b := NewBytes([]byte("abcdef"))

	got, err := io.ReadAll(b)
	if err != nil {
		t.Fatalf("ReadAll() error = %v, want nil", err)
	}
	if string(got) != "abcdef" {
		t.Errorf("ReadAll() = %q, want %q", got, "abcdef")
	}

	if _, err := b.Read(make([]byte, 1)); err != io.EOF {
		t.Errorf("Read() at end error = %v, want io.EOF", err)
	}
}

func TestBytes_Seek(t *testing.T) {
	t.Parallel()

	b := NewBytes([]byte("abcdef"))

	pos, err := b.Seek(2, io.SeekStart)
	if err != nil || pos != 2 {
		t.Fatalf("Seek(2, SeekStart) = (%d, %v), want (2, nil)", pos, err)
	}

	one := make([]byte, 1)
	if _, err := b.Read(one); err != nil || one[0] != 'c' {
		t.Fatalf("Read() after seek = (%q, %v), want (c, nil)", one, err)
	}

	pos, err = b.Seek(1, io.SeekCurrent)
	if err != nil || pos != 4 {
		t.Fatalf("Seek(1, SeekCurrent) = (%d, %v), want (4, nil)", pos, err)
	}

	pos, err = b.Seek(-1, io.SeekEnd)
	if err != nil || pos != 5 {
		t.Fatalf("Seek(-1, SeekEnd) = (%d, %v), want (5, nil)", pos, err)
	}

	if _, err := b.Seek(0, 42); !errors.Is(err, ErrInvalidWhence) {
		t.Errorf("Seek(0, 42) error = %v, want ErrInvalidWhence", err)
	}
	if _, err := b.Seek(-1, io.SeekStart); !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("Seek(-1, SeekStart) error = %v, want ErrNegativeOffset", err)
	}
}

func TestBytes_Length(t *testing.T) {
	t.Parallel()

	length, known := NewBytes(make([]byte, 42)).Length()
	if !known {
		t.Fatal("Length() known = false, want true")
	}
	if length != 42 {
		t.Errorf("Length() = %d, want 42", length)
	}
}

func TestBytes_PushBackByte(t *testing.T) {
	t.Parallel()

	b := NewBytes([]byte("xy"))

	if err := b.PushBackByte('x'); err == nil {
		t.Error("PushBackByte() at start error = nil, want error")
	}

	one := make([]byte, 1)
	if _, err := b.Read(one); err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if err := b.PushBackByte(one[0]); err != nil {
		t.Fatalf("PushBackByte() error = %v, want nil", err)
	}
	if _, err := b.Read(one); err != nil || one[0] != 'x' {
		t.Errorf("Read() after push back = (%q, %v), want (x, nil)", one, err)
	}
}
