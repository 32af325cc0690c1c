// SPDX-License-Identifier: EPL-2.0

// Package mp3 binds MPEG-1 Layer III decoding to the stream layer via
// github.com/hajimehoshi/go-mp3. The binding is decode-only: no MP3
// encoder exists in the Go ecosystem.
//
// go-mp3 always produces 16-bit, two-channel PCM, so the header reports
// 2 channels and a bit depth of 16 regardless of the source layout.
// Computing the total frame count requires the backend to scan the entire
// stream when the decoder is opened; callers must tolerate that latency on
// Open.
package mp3
