// SPDX-License-Identifier: EPL-2.0

package audio

// Header describes a decoded stream: container format, channel layout and
// total length. Decoders produce it once per stream and never mutate it
// afterwards; callers constructing output may override Format before writing
// (decode one container, retarget another).
type Header struct {
	Format     Format
	Channels   int
	Frames     int64
	SampleRate int
	// BitDepth is the sample word size of the source or target encoding,
	// one of 8, 16, 24 or 32. The in-memory representation is always
	// 32-bit float regardless of BitDepth.
	BitDepth int
}

// Validate checks the header field invariants.
func (h Header) Validate() error {
	if !h.Format.Valid() {
		return ErrInvalidFormat
	}
	if h.Channels < 1 {
		return ErrInvalidChannelCount
	}
	if h.Frames < 0 {
		return ErrInvalidFrameCount
	}
	if h.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	switch h.BitDepth {
	case 8, 16, 24, 32:
	default:
		return ErrUnsupportedBitDepth
	}
	return nil
}
