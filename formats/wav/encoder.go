// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/utils"
)

// Encoder writes interleaved float32 frames as integer PCM WAV. The byte
// output must support seeking: the RIFF chunk sizes are fixed up when the
// encoder is closed.
type Encoder struct {
	out    audio.ByteOutput
	enc    *gowav.Encoder
	header audio.Header
	intBuf []int
}

// NewEncoder starts a WAV encoding described by h onto out. Only
// StorageInt is representable in this binding; float storage requests are
// an invariant violation.
func NewEncoder(out audio.ByteOutput, h audio.Header, storage audio.StorageType) (*Encoder, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if storage != audio.StorageInt {
		return nil, ErrUnsupportedStorage
	}

	enc := gowav.NewEncoder(out, h.SampleRate, h.BitDepth, h.Channels, pcmFormat)

	return &Encoder{out: out, enc: enc, header: h}, nil
}

// WriteFrames scales and writes len(src)/channels frames. It returns the
// number of frames written, which is short only on a sink error.
func (e *Encoder) WriteFrames(src []float32) (int, error) {
	channels := e.header.Channels
	if len(src)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if cap(e.intBuf) < len(src) {
		e.intBuf = make([]int, len(src))
	}
	data := e.intBuf[:len(src)]
	if e.header.BitDepth == 8 {
		utils.FloatToPCM8(data, src)
	} else {
		utils.FloatToPCM(data, src, e.header.BitDepth)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  e.header.SampleRate,
		},
		Data:           data,
		SourceBitDepth: e.header.BitDepth,
	}
	if err := e.enc.Write(buf); err != nil {
		return 0, fmt.Errorf("write PCM buffer: %w", err)
	}

	return len(src) / channels, nil
}

// Close finalizes the container, rewriting the RIFF sizes. It does not
// commit the byte output; the pipeline decides whether output becomes
// visible.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finalize WAV container: %w", err)
	}
	return nil
}
