// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the integer full-scale factor for a bit depth:
// (1 << (bitDepth-1)) - 1. The same factor is used on both the encode and
// decode side so integer round trips stay within one quantization step.
func FullScale(bitDepth int) int {
	return (1 << (bitDepth - 1)) - 1
}

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// FloatToInt16 converts a single normalized sample to 16-bit PCM with
// clamping.
func FloatToInt16(x float32) int16 {
	return int16(Clamp(x) * 32767.0)
}

// FloatToPCM scales normalized float samples into dst as signed integers at
// the given bit depth, clamping out-of-range input. dst and src must be the
// same length.
func FloatToPCM(dst []int, src []float32, bitDepth int) {
	scale := float64(FullScale(bitDepth))
	for i, s := range src {
		dst[i] = int(float64(Clamp(s)) * scale)
	}
}

// PCMToFloat converts signed integer samples at the given bit depth into
// normalized float samples. dst and src must be the same length.
func PCMToFloat(dst []float32, src []int, bitDepth int) {
	scale := float64(FullScale(bitDepth))
	for i, s := range src {
		dst[i] = float32(float64(s) / scale)
	}
}

// FloatToPCM8 converts normalized float samples to the unsigned 8-bit
// representation WAV uses (0..255 with 128 as zero).
func FloatToPCM8(dst []int, src []float32) {
	for i, s := range src {
		dst[i] = int(Clamp(s)*127.0) + 128
	}
}

// PCM8ToFloat converts unsigned 8-bit samples (128 biased) to normalized
// float samples.
func PCM8ToFloat(dst []float32, src []int) {
	for i, s := range src {
		dst[i] = float32(s-128) / 127.0
	}
}

// FloatToPCM32 is FloatToPCM for int32 destinations, used by backends whose
// native sample word is a 32-bit integer.
func FloatToPCM32(dst []int32, src []float32, bitDepth int) {
	scale := float64(FullScale(bitDepth))
	for i, s := range src {
		dst[i] = int32(float64(Clamp(s)) * scale)
	}
}

// PCM32ToFloat is PCMToFloat for int32 sources.
func PCM32ToFloat(dst []float32, src []int32, bitDepth int) {
	scale := float64(FullScale(bitDepth))
	for i, s := range src {
		dst[i] = float32(float64(s) / scale)
	}
}
