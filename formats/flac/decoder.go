// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"
	"math"

	gflac "github.com/mewkiz/flac"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/utils"
)

// Decoder reads a FLAC stream and produces interleaved float32 frames.
// Integer samples are scaled to floats exactly once, here; float-tagged
// streams are restored bit for bit. Split streams (32-bit sample words
// carried as 16-bit pairs, see package doc) are rejoined transparently.
type Decoder struct {
	in      audio.ByteInput
	stream  *gflac.Stream
	header  audio.Header
	storage audio.StorageType
	split   bool
	pending []float32
	pos     int64
}

// Open parses the FLAC signature and metadata blocks from in. Failure is
// recoverable: the caller rewinds and tries the next format candidate.
func Open(in audio.ByteInput) (*Decoder, error) {
	stream, err := gflac.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacStream, err)
	}

	storage, split, err := streamLayout(stream.Blocks)
	if err != nil {
		return nil, err
	}

	info := stream.Info
	bitDepth := int(info.BitsPerSample)
	frames := int64(info.NSamples)
	if split {
		if info.BitsPerSample != 16 || info.NSamples%2 != 0 {
			return nil, ErrInvalidSampleLayout
		}
		bitDepth = 32
		frames /= 2
	}

	header := audio.Header{
		Format:     audio.FormatFLAC,
		Channels:   int(info.NChannels),
		Frames:     frames,
		SampleRate: int(info.SampleRate),
		BitDepth:   bitDepth,
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{
		in:      in,
		stream:  stream,
		header:  header,
		storage: storage,
		split:   split,
	}, nil
}

func (d *Decoder) Header() audio.Header {
	return d.header
}

// Storage reports the storage type the stream was encoded with.
func (d *Decoder) Storage() audio.StorageType {
	return d.storage
}

func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	channels := d.header.Channels
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	filled := 0
	for filled < len(dst) {
		if len(d.pending) == 0 {
			if err := d.decodeNext(); err != nil {
				if err == io.EOF {
					break
				}
				return 0, err
			}
		}
		n := copy(dst[filled:], d.pending)
		d.pending = d.pending[n:]
		filled += n
	}

	frames := filled / channels
	d.pos += int64(frames)
	return frames, nil
}

// decodeNext parses one FLAC frame into the pending sample buffer.
func (d *Decoder) decodeNext() error {
	f, err := d.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("parse FLAC frame: %w", err)
	}

	channels := d.header.Channels
	flacSamples := len(f.Subframes[0].Samples)
	blockSize := flacSamples
	if d.split {
		// Pairs never straddle blocks; an odd block is corrupt.
		if flacSamples%2 != 0 {
			return ErrInvalidSampleLayout
		}
		blockSize = flacSamples / 2
	}
	samples := blockSize * channels
	if cap(d.pending) < samples {
		d.pending = make([]float32, samples)
	}
	d.pending = d.pending[:samples]

	switch {
	case d.split:
		scale := float64(utils.FullScale(32))
		for i := 0; i < blockSize; i++ {
			for ch := 0; ch < channels; ch++ {
				word := joinWord(f.Subframes[ch].Samples[i*2], f.Subframes[ch].Samples[i*2+1])
				if d.storage.IsFloat() {
					d.pending[i*channels+ch] = math.Float32frombits(uint32(word))
				} else {
					d.pending[i*channels+ch] = float32(float64(word) / scale)
				}
			}
		}
	default:
		scale := float64(utils.FullScale(d.header.BitDepth))
		for i := 0; i < blockSize; i++ {
			for ch := 0; ch < channels; ch++ {
				v := f.Subframes[ch].Samples[i]
				d.pending[i*channels+ch] = float32(float64(v) / scale)
			}
		}
	}
	return nil
}

// SeekFrame repositions the decode cursor. The binding does not seek the
// compressed stream mid-frame; it reopens from the start and decodes
// forward, failing rather than corrupting position when the input cannot
// rewind.
func (d *Decoder) SeekFrame(frame int64) error {
	if frame < 0 || frame > d.header.Frames {
		return ErrSeekOutOfRange
	}

	if _, err := d.in.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}
	stream, err := gflac.Parse(d.in)
	if err != nil {
		return fmt.Errorf("reopen FLAC stream: %w", err)
	}
	d.stream = stream
	d.pending = nil
	d.pos = 0

	const skipChunk = 4096
	buf := make([]float32, skipChunk*d.header.Channels)
	for d.pos < frame {
		want := frame - d.pos
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

// Close releases the parse context. The byte input stays open for its
// owner; the underlying stream is dropped rather than closed so the
// library does not close the input out from under it.
func (d *Decoder) Close() error {
	d.stream = nil
	d.pending = nil
	return nil
}
