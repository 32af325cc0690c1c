// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"math"
)

// MockFrames is a test helper that generates interleaved float32 frames.
// It implements the audio.FrameReader contract (without importing it to
// avoid cycles): short reads only at exhaustion, zero frames when done.
type MockFrames struct {
	channels    int
	totalFrames int64
	generated   int64
	waveform    func(frame int64, channel int) float32
}

// NewMockFrames creates a frame source producing totalFrames frames of
// channels samples each, with values from waveform.
func NewMockFrames(channels int, totalFrames int64, waveform func(frame int64, channel int) float32) *MockFrames {
	return &MockFrames{
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentFrames creates a frame source generating silence.
func NewSilentFrames(channels int, totalFrames int64) *MockFrames {
	return NewMockFrames(channels, totalFrames, func(int64, int) float32 {
		return 0
	})
}

// NewSineFrames creates a frame source generating a sine wave.
func NewSineFrames(sampleRate, channels int, totalFrames int64, frequency float64) *MockFrames {
	return NewMockFrames(channels, totalFrames, func(frame int64, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantFrames creates a frame source with a constant sample value.
func NewConstantFrames(channels int, totalFrames int64, value float32) *MockFrames {
	return NewMockFrames(channels, totalFrames, func(int64, int) float32 {
		return value
	})
}

// Reset rewinds the source so it can be read again.
func (m *MockFrames) Reset() {
	m.generated = 0
}

func (m *MockFrames) ReadFrames(dst []float32) (int, error) {
	frames := int64(len(dst) / m.channels)
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for i := int64(0); i < frames; i++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[i*int64(m.channels)+int64(ch)] = m.waveform(m.generated+i, ch)
		}
	}

	m.generated += frames
	return int(frames), nil
}

// ErrTruncated is returned by TruncatedFrames once the truncation point
// is reached.
var ErrTruncated = errors.New("audiotest: source truncated")

// TruncatedFrames wraps a frame source and fails once limit frames were
// delivered, for pipeline failure-path tests.
type TruncatedFrames struct {
	Source    *MockFrames
	Limit     int64
	delivered int64
}

func (t *TruncatedFrames) ReadFrames(dst []float32) (int, error) {
	if t.delivered >= t.Limit {
		return 0, ErrTruncated
	}
	n, err := t.Source.ReadFrames(dst)
	t.delivered += int64(n)
	return n, err
}

// AbortAfter returns a cancellation predicate that fires on the n-th
// evaluation.
func AbortAfter(n int) func() bool {
	calls := 0
	return func() bool {
		calls++
		return calls >= n
	}
}
