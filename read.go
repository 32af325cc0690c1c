// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/stream"
)

// ShouldAbort is the cooperative cancellation predicate polled between
// chunks. A nil predicate never aborts. There is no internal timer or
// deadline; callers wanting timeouts surface them through the predicate.
type ShouldAbort func() bool

// chunkFrames bounds a single transfer iteration. Cancellation latency is
// at most one chunk's worth of I/O plus conversion.
const chunkFrames = 1 << 14

func aborted(shouldAbort ShouldAbort) bool {
	return shouldAbort != nil && shouldAbort()
}

// Read probes in with hint, decodes the whole stream and transfers it to
// out in chunks. When a candidate format fails during the body read, both
// the input and the output are reset to their start positions and the next
// candidate is tried, so no half-written item survives a misdetection.
//
// Read returns nil on success, audio.ErrAborted when shouldAbort fired,
// audio.ErrUnknownFormat when no candidate could decode the stream, and
// the underlying error on a hard failure of the last candidate.
func Read(in audio.ByteInput, out audio.ItemOutput, hint FormatHint, shouldAbort ShouldAbort) error {
	var lastErr error
	for _, format := range hint.candidates {
		err := tryRead(in, out, format, shouldAbort, chunkFrames)
		if err == nil {
			return nil
		}
		if errors.Is(err, audio.ErrAborted) {
			return err
		}
		lastErr = err
		if _, err := in.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewind input after failed read: %w", err)
		}
		if err := out.SeekFrame(0); err != nil {
			return fmt.Errorf("reset output after failed read: %w", err)
		}
	}
	if lastErr == nil {
		return audio.ErrUnknownFormat
	}
	return fmt.Errorf("%w: %w", audio.ErrUnknownFormat, lastErr)
}

func tryRead(in audio.ByteInput, out audio.ItemOutput, format audio.Format, shouldAbort ShouldAbort, chunk int64) error {
	dec, err := openFormatDecoder(in, format)
	if err != nil {
		return err
	}
	defer dec.close()

	header := dec.header()
	if err := out.WriteHeader(header); err != nil {
		return err
	}

	var buf []float32
	remaining := header.Frames
	for remaining > 0 {
		if aborted(shouldAbort) {
			return audio.ErrAborted
		}

		frames := remaining
		if frames > chunk {
			frames = chunk
		}
		samples := frames * int64(header.Channels)
		if int64(cap(buf)) < samples {
			buf = make([]float32, samples)
		}

		n, err := dec.readFrames(buf[:samples])
		if err != nil {
			return err
		}
		if int64(n) != frames {
			return fmt.Errorf("decoding %s body: %w", format, audio.ErrShortRead)
		}

		written, err := out.WriteFrames(buf[:samples])
		if err != nil {
			return err
		}
		if int64(written) != frames {
			return fmt.Errorf("storing %s body: %w", format, audio.ErrShortWrite)
		}

		remaining -= frames
	}

	return out.Commit()
}

// ReadHeader probes in with hint and returns the first header a candidate
// backend parses, without transferring frames.
//
// NOTE: For MP3 sources this scans the entire stream to learn the frame
// count.
func ReadHeader(in audio.ByteInput, hint FormatHint) (audio.Header, error) {
	dec, err := openDecoder(in, hint)
	if err != nil {
		return audio.Header{}, err
	}
	defer dec.close()
	return dec.header(), nil
}

// ReadBytes decodes an in-memory buffer into a fully realized item.
func ReadBytes(data []byte, hint FormatHint, shouldAbort ShouldAbort) (*audio.Item, error) {
	return readItem(stream.NewBytes(data), hint, shouldAbort)
}

// ReadFile decodes a file on disk into a fully realized item.
func ReadFile(path string, hint FormatHint, shouldAbort ShouldAbort) (*audio.Item, error) {
	in, err := stream.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return readItem(in, hint, shouldAbort)
}

func readItem(in audio.ByteInput, hint FormatHint, shouldAbort ShouldAbort) (*audio.Item, error) {
	var item audio.Item
	if err := Read(in, audio.NewItemWriter(&item), hint, shouldAbort); err != nil {
		return nil, err
	}
	return &item, nil
}

// ReadHeaderBytes probes an in-memory buffer for its header.
func ReadHeaderBytes(data []byte, hint FormatHint) (audio.Header, error) {
	return ReadHeader(stream.NewBytes(data), hint)
}

// ReadHeaderFile probes a file on disk for its header.
func ReadHeaderFile(path string, hint FormatHint) (audio.Header, error) {
	in, err := stream.OpenFile(path)
	if err != nil {
		return audio.Header{}, err
	}
	defer in.Close()
	return ReadHeader(in, hint)
}
