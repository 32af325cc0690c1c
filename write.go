// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"fmt"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/formats/flac"
	"github.com/ik5/audiorw/formats/wav"
	"github.com/ik5/audiorw/stream"
)

// frameEncoder is the write-side contract both backend families satisfy.
type frameEncoder interface {
	WriteFrames(src []float32) (int, error)
	Close() error
}

func newEncoder(h audio.Header, out audio.ByteOutput, storage audio.StorageType) (frameEncoder, error) {
	switch h.Format {
	case audio.FormatFLAC:
		return flac.NewEncoder(out, h, storage)
	case audio.FormatWAV:
		return wav.NewEncoder(out, h, storage)
	case audio.FormatMP3, audio.FormatOGG:
		return nil, fmt.Errorf("%s: %w", h.Format, audio.ErrEncodeUnsupported)
	default:
		return nil, audio.ErrInvalidFormat
	}
}

// Write encodes header.Frames frames pulled from in into out, in the
// container named by header.Format with the given sample storage. The
// sink is committed only when every frame transferred; on abort or
// failure nothing becomes visible at the destination.
//
// Write returns nil on success, audio.ErrAborted when shouldAbort fired,
// and the underlying error on failure. A short read from the source or a
// short write to the sink is a failure; the pipeline does not tolerate
// silent truncation.
func Write(header audio.Header, in audio.FrameReader, out audio.ByteOutput, storage audio.StorageType, shouldAbort ShouldAbort) error {
	return writeChunks(header, in, out, storage, shouldAbort, chunkFrames)
}

func writeChunks(header audio.Header, in audio.FrameReader, out audio.ByteOutput, storage audio.StorageType, shouldAbort ShouldAbort, chunk int64) error {
	enc, err := newEncoder(header, out, storage)
	if err != nil {
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

		n, err := in.ReadFrames(buf[:samples])
		if err != nil {
			return err
		}
		if int64(n) != frames {
			return fmt.Errorf("reading frames for %s: %w", header.Format, audio.ErrShortRead)
		}

		written, err := enc.WriteFrames(buf[:samples])
		if err != nil {
			return err
		}
		if int64(written) != frames {
			return fmt.Errorf("encoding %s frames: %w", header.Format, audio.ErrShortWrite)
		}

		remaining -= frames
	}

	if err := enc.Close(); err != nil {
		return err
	}
	return out.Commit()
}

// WriteStream encodes frames from in until the source is exhausted, for
// transfers whose length is not known up front. header.Frames is ignored
// as a driver; the container's own length fields are fixed up when the
// encoder closes. Exhaustion and truncation are indistinguishable here,
// so sources that can fail mid-stream should use Write with a known frame
// count instead.
func WriteStream(header audio.Header, in audio.FrameReader, out audio.ByteOutput, storage audio.StorageType, shouldAbort ShouldAbort) error {
	enc, err := newEncoder(header, out, storage)
	if err != nil {
		return err
	}

	samples := chunkFrames * int64(header.Channels)
	buf := make([]float32, samples)
	for {
		if aborted(shouldAbort) {
			return audio.ErrAborted
		}

		n, err := in.ReadFrames(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}

		written, err := enc.WriteFrames(buf[:n*header.Channels])
		if err != nil {
			return err
		}
		if written != n {
			return fmt.Errorf("encoding %s frames: %w", header.Format, audio.ErrShortWrite)
		}
	}

	if err := enc.Close(); err != nil {
		return err
	}
	return out.Commit()
}

// WriteBytes encodes a whole item into a fresh in-memory buffer.
func WriteBytes(item *audio.Item, storage audio.StorageType, shouldAbort ShouldAbort) ([]byte, error) {
	out := stream.NewBuffer()
	if err := Write(item.Header, audio.NewItemReader(item), out, storage, shouldAbort); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteFile encodes a whole item to a file on disk. The destination path
// is replaced atomically on success and left untouched on abort or
// failure; the transient "<path>.tmp" sibling is cleaned up either way.
func WriteFile(item *audio.Item, path string, storage audio.StorageType, shouldAbort ShouldAbort) error {
	out, err := stream.CreateFile(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return Write(item.Header, audio.NewItemReader(item), out, storage, shouldAbort)
}
