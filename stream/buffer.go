// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
)

// Buffer is a growable, seekable in-memory byte output. Encoders that fix
// up headers after writing the body (RIFF sizes, stream info) rely on the
// seek support. Commit is a no-op; the written bytes are available through
// Bytes at any time.
type Buffer struct {
	data []byte
	pos  int64
}

// NewBuffer creates an empty in-memory byte output.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, int64(cap(b.data))*2))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return b.pos, ErrInvalidWhence
	}
	if pos < 0 {
		return b.pos, ErrNegativeOffset
	}
	b.pos = pos
	return pos, nil
}

func (b *Buffer) Commit() error { return nil }

func (b *Buffer) Close() error { return nil }

// Bytes returns the written content. The slice aliases the buffer's
// internal storage.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}
