// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/utils"
)

const pcmFormat = 1 // WAVE_FORMAT_PCM

// Decoder reads integer PCM WAV from a byte input and produces interleaved
// float32 frames.
type Decoder struct {
	in     audio.ByteInput
	dec    *gowav.Decoder
	header audio.Header
	intBuf []int
	pos    int64
}

// Open parses the RIFF/WAVE headers from in. It fails with a recoverable
// error when in does not hold a WAV stream, leaving rewinding to the
// caller.
func Open(in audio.ByteInput) (*Decoder, error) {
	dec, header, err := parse(in)
	if err != nil {
		return nil, err
	}

	return &Decoder{in: in, dec: dec, header: header}, nil
}

func parse(in audio.ByteInput) (*gowav.Decoder, audio.Header, error) {
	dec := gowav.NewDecoder(in)
	if !dec.IsValidFile() {
		return nil, audio.Header{}, ErrNotWavFile
	}
	if dec.WavAudioFormat != pcmFormat {
		return nil, audio.Header{}, ErrOnlyPCMSupported
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, audio.Header{}, audio.ErrUnsupportedBitDepth
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, audio.Header{}, fmt.Errorf("seek to PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	bytesPerFrame := channels * int(dec.BitDepth) / 8
	if bytesPerFrame == 0 {
		return nil, audio.Header{}, audio.ErrInvalidChannelCount
	}

	header := audio.Header{
		Format:     audio.FormatWAV,
		Channels:   channels,
		Frames:     int64(dec.PCMSize) / int64(bytesPerFrame),
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
	}
	if err := header.Validate(); err != nil {
		return nil, audio.Header{}, err
	}

	return dec, header, nil
}

// Header returns the stream header. It is a cheap metadata read for WAV.
func (d *Decoder) Header() audio.Header {
	return d.header
}

// ReadFrames decodes up to len(dst)/channels frames into dst. A short
// count occurs only at end of stream; 0 frames signals exhaustion.
func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	channels := d.header.Channels
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	want := len(dst)
	remaining := int((d.header.Frames - d.pos)) * channels
	if want > remaining {
		want = remaining
	}
	if want == 0 {
		return 0, nil
	}

	if cap(d.intBuf) < want {
		d.intBuf = make([]int, want)
	}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  d.header.SampleRate,
		},
	}

	total := 0
	for total < want {
		buf.Data = d.intBuf[total:want]
		n, err := d.dec.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("read PCM buffer: %w", err)
		}
		if n == 0 {
			break
		}
		total += n
	}

	frames := total / channels
	samples := frames * channels
	if d.header.BitDepth == 8 {
		utils.PCM8ToFloat(dst[:samples], d.intBuf[:samples])
	} else {
		utils.PCMToFloat(dst[:samples], d.intBuf[:samples], d.header.BitDepth)
	}

	d.pos += int64(frames)
	return frames, nil
}

// SeekFrame repositions the decode cursor to an absolute frame index. The
// container has no frame index, so seeking reopens the stream and decodes
// forward from the start.
func (d *Decoder) SeekFrame(frame int64) error {
	if frame < 0 || frame > d.header.Frames {
		return ErrSeekOutOfRange
	}

	if _, err := d.in.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}
	dec, _, err := parse(d.in)
	if err != nil {
		return err
	}
	d.dec = dec
	d.pos = 0

	return d.skip(frame)
}

func (d *Decoder) skip(frames int64) error {
	const skipChunk = 4096
	buf := make([]float32, skipChunk*d.header.Channels)
	for d.pos < frames {
		want := frames - d.pos
		if want > skipChunk {
			want = skipChunk
		}
		n, err := d.ReadFrames(buf[:want*int64(d.header.Channels)])
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrTruncatedStream
		}
	}
	return nil
}

// Close releases decoder state. The byte input stays open; its owner
// closes it.
func (d *Decoder) Close() error {
	d.dec = nil
	return nil
}
