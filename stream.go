// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/stream"
)

// Stream is a probed decoder over a byte input: open once, then pull
// frames on demand. It owns both the decoder and, for OpenFile/OpenBytes,
// the underlying input; Close releases both. A Stream is for use by a
// single goroutine.
type Stream struct {
	in  audio.ByteInput
	dec decoder
}

// OpenStream probes in with hint and returns a frame stream over it.
// OpenStream takes ownership of in on success; Close releases it together
// with the decoder.
//
// NOTE: For MP3 sources the whole stream is scanned at this point to
// learn the frame count.
func OpenStream(in audio.ByteInput, hint FormatHint) (*Stream, error) {
	dec, err := openDecoder(in, hint)
	if err != nil {
		return nil, err
	}
	return &Stream{in: in, dec: dec}, nil
}

// OpenBytes opens a frame stream over an in-memory buffer.
func OpenBytes(data []byte, hint FormatHint) (*Stream, error) {
	return OpenStream(stream.NewBytes(data), hint)
}

// OpenFile opens a frame stream over a file on disk.
func OpenFile(path string, hint FormatHint) (*Stream, error) {
	in, err := stream.OpenFile(path)
	if err != nil {
		return nil, err
	}
	s, err := OpenStream(in, hint)
	if err != nil {
		in.Close()
		return nil, err
	}
	return s, nil
}

// Header returns the decoded stream header.
func (s *Stream) Header() audio.Header {
	return s.dec.header()
}

// ReadFrames decodes up to len(dst)/channels interleaved frames into dst,
// returning the number of frames produced. Fewer frames than requested are
// produced only at end of stream; 0 frames means exhaustion.
func (s *Stream) ReadFrames(dst []float32) (int, error) {
	return s.dec.readFrames(dst)
}

// SeekFrame repositions the decode cursor to an absolute frame index.
func (s *Stream) SeekFrame(frame int64) error {
	return s.dec.seekFrame(frame)
}

// Close releases the decoder and then the byte input.
func (s *Stream) Close() error {
	err := s.dec.close()
	if cerr := s.in.Close(); err == nil {
		err = cerr
	}
	return err
}
