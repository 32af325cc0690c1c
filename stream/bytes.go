// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
)

// Bytes is a read-only byte input over an in-memory buffer. The buffer is
// not copied; it must not be mutated while the stream is in use.
type Bytes struct {
	data []byte
	pos  int64
}

// NewBytes creates a byte input reading from data.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

func (b *Bytes) Read(p []byte) (int, error) {
	if b.pos < 0 || b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *Bytes) Seek(offset int64, whence int) (int64, error) {
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

// Length returns the buffer size. It is always known for memory streams.
func (b *Bytes) Length() (int64, bool) {
	return int64(len(b.data)), true
}

// PushBackByte rewinds the cursor by one byte. The stream is a fixed view,
// so the pushed byte must be the byte that was just read.
func (b *Bytes) PushBackByte(_ byte) error {
	if b.pos <= 0 {
		return ErrNegativeOffset
	}
	b.pos--
	return nil
}

func (b *Bytes) Close() error { return nil }
