// SPDX-License-Identifier: EPL-2.0

// Package wav binds the uncompressed RIFF/WAVE container to the stream
// layer via github.com/go-audio/wav.
//
// The decoder accepts integer PCM at 8, 16, 24 or 32 bits per sample and
// produces interleaved float32 frames. The encoder writes integer storage
// at the same bit depths; 8-bit samples use the unsigned, 128-biased
// representation the container requires. Float sample storage is not
// supported by this container binding — the dedicated FLAC backend covers
// float storage.
package wav
