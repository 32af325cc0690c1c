// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"math"

	gflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/utils"
)

// maxBlockSize is the largest block the FLAC frame header can describe.
// WriteFrames splits larger chunks transparently.
const maxBlockSize = 65535

// Encoder packs interleaved float32 frames into a FLAC stream. Integer
// storage scales samples by the full-scale factor for the header's bit
// depth; float storage carries 32-bit IEEE bit patterns. The frame
// encoder tops out at a 16-bit sample word for encoding, so 32-bit words
// (float storage, or 32-bit integer storage) go out as tagged pairs of
// 16-bit samples (see package doc). Mono and stereo only, like the
// original backend configuration.
type Encoder struct {
	enc      *gflac.Encoder
	header   audio.Header
	storage  audio.StorageType
	channels frame.Channels
	split    bool
	buf      [][]int32
}

// NewEncoder starts a FLAC encoding described by h onto out.
func NewEncoder(out audio.ByteOutput, h audio.Header, storage audio.StorageType) (*Encoder, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	var channels frame.Channels
	switch h.Channels {
	case 1:
		channels = frame.ChannelsMono
	case 2:
		channels = frame.ChannelsLR
	default:
		return nil, ErrTooManyChannels
	}

	split := storage.IsFloat() || h.BitDepth == 32
	bps := h.BitDepth
	nsamples := uint64(h.Frames)
	if split {
		bps = 16
		nsamples *= 2
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  maxBlockSize,
		SampleRate:    uint32(h.SampleRate),
		NChannels:     uint8(h.Channels),
		BitsPerSample: uint8(bps),
		NSamples:      nsamples,
	}

	var blocks []*meta.Block
	if split {
		blocks = append(blocks, layoutBlock(storage, split))
	}

	enc, err := gflac.NewEncoder(out, info, blocks...)
	if err != nil {
		return nil, fmt.Errorf("open FLAC encoder: %w", err)
	}

	return &Encoder{
		enc:      enc,
		header:   h,
		storage:  storage,
		channels: channels,
		split:    split,
	}, nil
}

// WriteFrames packs len(src)/channels frames and returns the number of
// frames written.
func (e *Encoder) WriteFrames(src []float32) (int, error) {
	channels := e.header.Channels
	if len(src)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	blockLimit := maxBlockSize
	if e.split {
		// Two 16-bit samples per logical frame and channel.
		blockLimit /= 2
	}

	total := len(src) / channels
	for done := 0; done < total; {
		block := total - done
		if block > blockLimit {
			block = blockLimit
		}
		if err := e.writeBlock(src[done*channels : (done+block)*channels]); err != nil {
			return done, err
		}
		done += block
	}
	return total, nil
}

func (e *Encoder) writeBlock(src []float32) error {
	channels := e.header.Channels
	blockSize := len(src) / channels
	flacSamples := blockSize
	bps := e.header.BitDepth
	if e.split {
		flacSamples = blockSize * 2
		bps = 16
	}

	if e.buf == nil {
		e.buf = make([][]int32, channels)
	}
	subframes := make([]*frame.Subframe, channels)
	for ch := 0; ch < channels; ch++ {
		if cap(e.buf[ch]) < flacSamples {
			e.buf[ch] = make([]int32, flacSamples)
		}
		samples := e.buf[ch][:flacSamples]
		switch {
		case e.storage.IsFloat():
			for i := 0; i < blockSize; i++ {
				splitWord(samples[i*2:], int32(math.Float32bits(src[i*channels+ch])))
			}
		case e.split:
			scale := float64(utils.FullScale(32))
			for i := 0; i < blockSize; i++ {
				word := int32(float64(utils.Clamp(src[i*channels+ch])) * scale)
				splitWord(samples[i*2:], word)
			}
		default:
			scale := float64(utils.FullScale(e.header.BitDepth))
			for i := 0; i < blockSize; i++ {
				samples[i] = int32(float64(utils.Clamp(src[i*channels+ch])) * scale)
			}
		}
		subframes[ch] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   samples,
			NSamples:  flacSamples,
		}
	}

	f := &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: false,
			BlockSize:         uint16(flacSamples),
			SampleRate:        uint32(e.header.SampleRate),
			Channels:          e.channels,
			BitsPerSample:     uint8(bps),
		},
		Subframes: subframes,
	}
	if err := e.enc.WriteFrame(f); err != nil {
		return fmt.Errorf("pack FLAC frame: %w", err)
	}
	return nil
}

// Close finalizes the stream. Committing the byte output stays with the
// pipeline.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finalize FLAC stream: %w", err)
	}
	return nil
}
