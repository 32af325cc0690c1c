// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/utils"
)

// go-mp3 output is fixed: 16-bit little-endian samples, two channels.
const (
	channels      = 2
	bitDepth      = 16
	bytesPerFrame = channels * bitDepth / 8
)

// mp3Reader is an interface for gomp3.Decoder to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
	Length() int64
}

// Decoder reads an MP3 stream and produces interleaved float32 frames.
type Decoder struct {
	dec    mp3Reader
	header audio.Header
	buf    []byte
	pos    int64
}

// Open parses the MP3 stream in. The backend scans the whole stream here
// to learn the total frame count, so Open carries the full-decode latency
// the header needs.
func Open(in audio.ByteInput) (*Decoder, error) {
	dec, err := gomp3.NewDecoder(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	length := dec.Length()
	if length < 0 {
		// The byte input is always seekable, so go-mp3 should have
		// computed the length; treat anything else as undecodable.
		return nil, ErrUnknownLength
	}

	header := audio.Header{
		Format:     audio.FormatMP3,
		Channels:   channels,
		Frames:     length / bytesPerFrame,
		SampleRate: dec.SampleRate(),
		BitDepth:   bitDepth,
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{dec: dec, header: header}, nil
}

func (d *Decoder) Header() audio.Header {
	return d.header
}

func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	want := len(dst) / channels * bytesPerFrame
	if cap(d.buf) < want {
		d.buf = make([]byte, want)
	}
	d.buf = d.buf[:want]

	total := 0
	for total < want {
		n, err := d.dec.Read(d.buf[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("decode MP3 frames: %w", err)
		}
		if n == 0 {
			break
		}
	}

	scale := float32(utils.FullScale(bitDepth))
	samples := total / 2 // one int16 per sample
	for i := 0; i < samples; i++ {
		low := uint16(d.buf[2*i])
		high := uint16(d.buf[2*i+1])
		dst[i] = float32(int16(low|(high<<8))) / scale
	}

	frames := samples / channels
	d.pos += int64(frames)
	return frames, nil
}

// SeekFrame repositions within the decoded PCM stream. go-mp3 seeks by
// decoded byte offset, so the frame index maps directly.
func (d *Decoder) SeekFrame(frame int64) error {
	if frame < 0 || frame > d.header.Frames {
		return ErrSeekOutOfRange
	}
	if _, err := d.dec.Seek(frame*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("seek MP3 stream: %w", err)
	}
	d.pos = frame
	return nil
}

// Close releases decoder state. The byte input stays open for its owner.
func (d *Decoder) Close() error {
	d.dec = nil
	return nil
}
