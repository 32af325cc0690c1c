// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audiorw/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing.
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	SetPosition(pos int64) error
	Read([]float32) (int, error)
}

// Decoder reads an Ogg Vorbis stream and produces interleaved float32
// frames.
type Decoder struct {
	dec    oggReader
	header audio.Header
	pos    int64
}

// Open parses the Ogg and Vorbis headers from in.
func Open(in audio.ByteInput) (*Decoder, error) {
	dec, err := oggvorbis.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	// Length needs a seekable source; the byte input always is one.
	frames := dec.Length()
	if frames < 0 {
		return nil, ErrUnknownLength
	}

	header := audio.Header{
		Format:     audio.FormatOGG,
		Channels:   dec.Channels(),
		Frames:     frames,
		SampleRate: dec.SampleRate(),
		BitDepth:   32,
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
	channels := d.header.Channels
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	filled := 0
	for filled < len(dst) {
		n, err := d.dec.Read(dst[filled:])
		filled += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("decode vorbis samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := filled / channels
	d.pos += int64(frames)
	return frames, nil
}

// SeekFrame repositions the decode cursor to an absolute frame index.
func (d *Decoder) SeekFrame(frame int64) error {
	if frame < 0 || frame > d.header.Frames {
		return ErrSeekOutOfRange
	}
	if err := d.dec.SetPosition(frame); err != nil {
		return fmt.Errorf("seek vorbis stream: %w", err)
	}
	d.pos = frame
	return nil
}

// Close releases decoder state. The byte input stays open for its owner.
func (d *Decoder) Close() error {
	d.dec = nil
	return nil
}
