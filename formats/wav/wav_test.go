// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audiorw/audio"
	"github.com/ik5/audiorw/stream"
	"github.com/ik5/audiorw/utils"
)

// buildWAV builds a minimal PCM WAV byte stream by hand.
func buildWAV(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * (bits / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestOpen_ParsesHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32767, 0, 100, -100, 200, -200}
	data := buildWAV(44100, 2, 16, samples)

	dec, err := Open(stream.NewBytes(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	defer dec.Close()

	h := dec.Header()
	if h.Format != audio.FormatWAV {
		t.Errorf("Format = %v, want wav", h.Format)
	}
	if h.Channels != 2 {
		t.Errorf("Channels = %d, want 2", h.Channels)
	}
	if h.Frames != 5 {
		t.Errorf("Frames = %d, want 5", h.Frames)
	}
	if h.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", h.SampleRate)
	}
	if h.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", h.BitDepth)
	}
}

func TestDecoder_ReadFrames(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32767, 0}
	data := buildWAV(8000, 1, 16, samples)

	dec, err := Open(stream.NewBytes(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	defer dec.Close()

	dst := make([]float32, len(samples))
	n, err := dec.ReadFrames(dst)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v, want nil", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadFrames() = %d frames, want %d", n, len(samples))
	}

	for i, s := range samples {
		want := float32(float64(s) / 32767.0)
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}

	if n, _ := dec.ReadFrames(dst); n != 0 {
		t.Errorf("ReadFrames() after end = %d frames, want 0", n)
	}
}

func TestDecoder_RejectsPartialFrame(t *testing.T) {
	t.Parallel()

	data := buildWAV(8000, 2, 16, []int16{1, 2, 3, 4})
	dec, err := Open(stream.NewBytes(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	defer dec.Close()

	if _, err := dec.ReadFrames(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadFrames(odd dst) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestOpen_NotWav(t *testing.T) {
	t.Parallel()

	if _, err := Open(stream.NewBytes([]byte("definitely not riff data"))); err == nil {
		t.Error("Open() on garbage error = nil, want error")
	}
}

func TestOpen_RejectsNonPCM(t *testing.T) {
	t.Parallel()

	data := buildWAV(8000, 1, 16, []int16{0, 0})
	// Patch the audio format field to IEEE float (3).
	data[20] = 3

	if _, err := Open(stream.NewBytes(data)); !errors.Is(err, ErrOnlyPCMSupported) {
		t.Errorf("Open() on float WAV error = %v, want ErrOnlyPCMSupported", err)
	}
}

func TestEncoder_RoundTrip16(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.25, -0.25, 0.5, -0.5, 0.99, -0.99, 0.1}
	h := audio.Header{
		Format:     audio.FormatWAV,
		Channels:   2,
		Frames:     int64(len(src) / 2),
		SampleRate: 44100,
		BitDepth:   16,
	}

	out := stream.NewBuffer()
	enc, err := NewEncoder(out, h, audio.StorageInt)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v, want nil", err)
	}
	if _, err := enc.WriteFrames(src); err != nil {
		t.Fatalf("WriteFrames() error = %v, want nil", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	dec, err := Open(stream.NewBytes(out.Bytes()))
	if err != nil {
		t.Fatalf("Open() on encoded stream error = %v, want nil", err)
	}
	defer dec.Close()

	if got := dec.Header(); got != h {
		t.Fatalf("Header() = %+v, want %+v", got, h)
	}

	dst := make([]float32, len(src))
	n, err := dec.ReadFrames(dst)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v, want nil", err)
	}
	if n != int(h.Frames) {
		t.Fatalf("ReadFrames() = %d frames, want %d", n, h.Frames)
	}

	step := 2.0 / float64(utils.FullScale(16))
	for i := range src {
		if diff := math.Abs(float64(dst[i] - src[i])); diff > step {
			t.Errorf("sample %d: round trip %v -> %v, off by %v", i, src[i], dst[i], diff)
		}
	}
}

func TestEncoder_RoundTripBitDepths(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -0.5, 1, -1, 0.125}
	for _, bitDepth := range []int{8, 24, 32} {
		h := audio.Header{
			Format:     audio.FormatWAV,
			Channels:   1,
			Frames:     int64(len(src)),
			SampleRate: 22050,
			BitDepth:   bitDepth,
		}

		out := stream.NewBuffer()
		enc, err := NewEncoder(out, h, audio.StorageInt)
		if err != nil {
			t.Fatalf("bit depth %d: NewEncoder() error = %v, want nil", bitDepth, err)
		}
		if _, err := enc.WriteFrames(src); err != nil {
			t.Fatalf("bit depth %d: WriteFrames() error = %v, want nil", bitDepth, err)
		}
		if err := enc.Close(); err != nil {
			t.Fatalf("bit depth %d: Close() error = %v, want nil", bitDepth, err)
		}

		dec, err := Open(stream.NewBytes(out.Bytes()))
		if err != nil {
			t.Fatalf("bit depth %d: Open() error = %v, want nil", bitDepth, err)
		}

		dst := make([]float32, len(src))
		n, err := dec.ReadFrames(dst)
		if err != nil {
			t.Fatalf("bit depth %d: ReadFrames() error = %v, want nil", bitDepth, err)
		}
		if n != len(src) {
			t.Fatalf("bit depth %d: ReadFrames() = %d frames, want %d", bitDepth, n, len(src))
		}

		step := 2.0 / float64(utils.FullScale(bitDepth))
		for i := range src {
			if diff := math.Abs(float64(dst[i] - src[i])); diff > step {
				t.Errorf("bit depth %d sample %d: round trip %v -> %v, off by %v",
					bitDepth, i, src[i], dst[i], diff)
			}
		}
		dec.Close()
	}
}

func TestNewEncoder_RejectsFloatStorage(t *testing.T) {
	t.Parallel()

	h := audio.Header{
		Format:     audio.FormatWAV,
		Channels:   1,
		Frames:     1,
		SampleRate: 44100,
		BitDepth:   16,
	}
	if _, err := NewEncoder(stream.NewBuffer(), h, audio.StorageFloat); !errors.Is(err, ErrUnsupportedStorage) {
		t.Errorf("NewEncoder(StorageFloat) error = %v, want ErrUnsupportedStorage", err)
	}
}

func TestDecoder_SeekFrame(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 64)
	for i := range samples {
		samples[i] = int16(i * 100)
	}
	data := buildWAV(8000, 1, 16, samples)

	dec, err := Open(stream.NewBytes(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}
	defer dec.Close()

	full := make([]float32, len(samples))
	if _, err := dec.ReadFrames(full); err != nil {
		t.Fatalf("ReadFrames() error = %v, want nil", err)
	}

	if err := dec.SeekFrame(40); err != nil {
		t.Fatalf("SeekFrame(40) error = %v, want nil", err)
	}

	tail := make([]float32, len(samples)-40)
	n, err := dec.ReadFrames(tail)
	if err != nil {
		t.Fatalf("ReadFrames() after seek error = %v, want nil", err)
	}
	if n != len(tail) {
		t.Fatalf("ReadFrames() after seek = %d frames, want %d", n, len(tail))
	}
	for i := range tail {
		if tail[i] != full[40+i] {
			t.Errorf("frame %d after seek = %v, want %v", 40+i, tail[i], full[40+i])
		}
	}

	if err := dec.SeekFrame(-1); !errors.Is(err, ErrSeekOutOfRange) {
		t.Errorf("SeekFrame(-1) error = %v, want ErrSeekOutOfRange", err)
	}
	if err := dec.SeekFrame(int64(len(samples)) + 1); !errors.Is(err, ErrSeekOutOfRange) {
		t.Errorf("SeekFrame(past end) error = %v, want ErrSeekOutOfRange", err)
	}
}
