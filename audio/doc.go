// SPDX-License-Identifier: EPL-2.0

// Package audio defines the core data model and capability interfaces for
// format-agnostic audio I/O.
//
// This package contains the building blocks the rest of the module is
// assembled from:
//   - Header, Format and StorageType describing streams and encodings
//   - ByteInput and ByteOutput, the seekable byte stream capabilities
//   - FrameReader and ItemOutput, the interleaved frame stream contracts
//   - Item, a fully realized in-memory header + sample buffer aggregate
//
// # Byte streams
//
// A ByteInput decouples "where bytes live" from "what decodes them": the
// same decoder backends run over in-memory buffers, files, or any
// caller-supplied implementation. A ByteOutput adds commit semantics —
// nothing is visible at the destination until Commit, so a failed or
// aborted transfer never leaves partial output behind.
//
// # Frame streams
//
// All decoded audio flows through the module as interleaved 32-bit float
// samples: a frame holds one sample per channel, frames are stored back to
// back. FrameReader produces such frames; ItemOutput consumes them after a
// header announcing the stream shape.
//
//	type FrameReader interface {
//	    ReadFrames(dst []float32) (int, error)
//	}
//
// ReadFrames returns the number of whole frames produced. A short count
// occurs only at end of stream, and zero frames means the stream is
// exhausted — not an error.
//
// # Items
//
// Item pairs a Header with channel-major sample buffers for whole-file
// in-memory conversion. ItemReader and ItemWriter adapt items to the frame
// stream contracts, interleaving on the way out and deinterleaving on the
// way in.
//
// # Outcomes
//
// Transfers finish in one of three ways: nil (success), ErrAborted (the
// caller's cancellation predicate fired; output discarded, not an error
// condition), or any other error (failure; output discarded). Use
// errors.Is to distinguish abort from failure.
package audio
