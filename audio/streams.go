// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// ByteInput is a seekable byte source a decoder backend can be opened
// against. Implementations live in the stream package (memory and file
// backed); callers may supply their own.
//
// Read returns (0, io.EOF) at end of data. Seek accepts the io.SeekStart,
// io.SeekCurrent and io.SeekEnd origins.
type ByteInput interface {
	io.ReadSeeker
	io.Closer

	// Length returns the total byte length when known.
	Length() (int64, bool)

	// PushBackByte makes b the next byte returned by Read, supporting the
	// one-byte lookahead some backends require.
	PushBackByte(b byte) error
}

// ByteOutput is a seekable byte sink. Nothing becomes visible at the
// destination until Commit; writing after Commit is undefined. Close
// releases resources and, when Commit was never called, discards any
// partially written output.
type ByteOutput interface {
	io.WriteSeeker
	io.Closer

	// Commit finalizes the output and makes it durable and visible.
	// Calling Commit more than once is a no-op.
	Commit() error
}

// FrameReader produces interleaved float32 frames.
//
// ReadFrames decodes up to len(dst)/channels frames into dst and returns
// the number of frames produced. Fewer frames than requested are returned
// only at end of stream; 0 frames signals exhaustion, not an error.
type FrameReader interface {
	ReadFrames(dst []float32) (int, error)
}

// ItemOutput receives a header followed by interleaved float32 frames.
// WriteFrames before WriteHeader is an invariant violation. SeekFrame
// repositions the write cursor; the pipeline uses SeekFrame(0) to discard
// a half-written body before retrying another format candidate.
type ItemOutput interface {
	WriteHeader(h Header) error
	WriteFrames(src []float32) (int, error)
	SeekFrame(frame int64) error
	Commit() error
}
