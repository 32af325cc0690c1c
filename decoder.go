// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"fmt"
	"io"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/formats/flac"
	"github.com/ik5/audiorw/formats/mp3"
	"github.com/ik5/audiorw/formats/vorbis"
	"github.com/ik5/audiorw/formats/wav"
)

// decoder is the closed set of backend decoder variants behind one
// dispatch surface. Exactly one arm is populated, selected by format; all
// dispatch is an exhaustive switch over the tag. FLAC is the dedicated
// compressed backend, the rest belong to the general container family.
//
// A decoder owns one open parse context over one byte input for its
// lifetime; it is never shared and never copied.
type decoder struct {
	format audio.Format
	flac   *flac.Decoder
	mp3    *mp3.Decoder
	vorbis *vorbis.Decoder
	wav    *wav.Decoder
}

// openFormatDecoder attempts to open a decoder of a single format against
// in. Failure is recoverable; a failed parse may have consumed bytes, so
// the caller rewinds before trying another candidate.
func openFormatDecoder(in audio.ByteInput, format audio.Format) (decoder, error) {
	switch format {
	case audio.FormatFLAC:
		d, err := flac.Open(in)
		if err != nil {
			return decoder{}, err
		}
		return decoder{format: format, flac: d}, nil
	case audio.FormatMP3:
		d, err := mp3.Open(in)
		if err != nil {
			return decoder{}, err
		}
		return decoder{format: format, mp3: d}, nil
	case audio.FormatOGG:
		d, err := vorbis.Open(in)
		if err != nil {
			return decoder{}, err
		}
		return decoder{format: format, vorbis: d}, nil
	case audio.FormatWAV:
		d, err := wav.Open(in)
		if err != nil {
			return decoder{}, err
		}
		return decoder{format: format, wav: d}, nil
	default:
		return decoder{}, audio.ErrInvalidFormat
	}
}

// openDecoder probes the hint's candidates in order against in, accepting
// the first backend that parses a header. The stream is rewound to its
// start after every failed candidate.
func openDecoder(in audio.ByteInput, hint FormatHint) (decoder, error) {
	for _, format := range hint.candidates {
		dec, err := openFormatDecoder(in, format)
		if err == nil {
			return dec, nil
		}
		if _, err := in.Seek(0, io.SeekStart); err != nil {
			return decoder{}, fmt.Errorf("rewind input after failed probe: %w", err)
		}
	}
	return decoder{}, audio.ErrUnknownFormat
}

func (d *decoder) header() audio.Header {
	switch d.format {
	case audio.FormatFLAC:
		return d.flac.Header()
	case audio.FormatMP3:
		return d.mp3.Header()
	case audio.FormatOGG:
		return d.vorbis.Header()
	case audio.FormatWAV:
		return d.wav.Header()
	}
	return audio.Header{}
}

func (d *decoder) readFrames(dst []float32) (int, error) {
	switch d.format {
	case audio.FormatFLAC:
		return d.flac.ReadFrames(dst)
	case audio.FormatMP3:
		return d.mp3.ReadFrames(dst)
	case audio.FormatOGG:
		return d.vorbis.ReadFrames(dst)
	case audio.FormatWAV:
		return d.wav.ReadFrames(dst)
	}
	return 0, audio.ErrInvalidFormat
}

func (d *decoder) seekFrame(frame int64) error {
	switch d.format {
	case audio.FormatFLAC:
		return d.flac.SeekFrame(frame)
	case audio.FormatMP3:
		return d.mp3.SeekFrame(frame)
	case audio.FormatOGG:
		return d.vorbis.SeekFrame(frame)
	case audio.FormatWAV:
		return d.wav.SeekFrame(frame)
	}
	return audio.ErrInvalidFormat
}

func (d *decoder) close() error {
	switch d.format {
	case audio.FormatFLAC:
		return d.flac.Close()
	case audio.FormatMP3:
		return d.mp3.Close()
	case audio.FormatOGG:
		return d.vorbis.Close()
	case audio.FormatWAV:
		return d.wav.Close()
	}
	return nil
}
