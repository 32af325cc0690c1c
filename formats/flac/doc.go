// SPDX-License-Identifier: EPL-2.0

// Package flac binds the dedicated lossless-compressed backend,
// github.com/mewkiz/flac, to the stream layer.
//
// Unlike the container bindings of the general backend, this package owns
// both directions: decoding FLAC streams into interleaved float32 frames
// and encoding integer or float sample storage.
//
// # Split sample words
//
// The frame encoder supports sample words up to 16 bits. Streams whose
// logical word is 32 bits wide (float storage of either kind, or 32-bit
// integer storage) are written as consecutive pairs of 16-bit samples,
// high half first, with the declared sample count doubled. A sample-split
// tag in the stream's Vorbis comment block marks the layout and the
// decoder rejoins the pairs, so the header reported to callers carries
// the logical frame count and bit depth.
//
// # Float storage
//
// The FLAC bitstream carries integer samples. Float and normalized-float
// storage are encoded by splitting the 32-bit IEEE bit pattern of each
// sample as above and recording the storage kind, together with a
// WavPack-style normalization exponent (127 normalized, 128
// unnormalized), in the Vorbis comment block. The decoder recognizes the
// tags and restores the original float samples exactly. Integer streams
// are scaled by the full-scale factor once, at decode time; downstream
// code never sees integer samples.
package flac
