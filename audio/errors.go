// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrAborted is returned when a transfer observes its cancellation
	// predicate. It is an intentional outcome, not a failure: output is
	// discarded the same way as on failure, but callers should not treat
	// it as an error condition.
	ErrAborted = errors.New("transfer aborted")

	// ErrUnknownFormat is returned when every probe candidate fails to
	// parse a header from the input.
	ErrUnknownFormat = errors.New("unrecognized audio format")

	ErrInvalidFormat       = errors.New("invalid audio format")
	ErrInvalidChannelCount = errors.New("channel count must be at least 1")
	ErrInvalidFrameCount   = errors.New("frame count must not be negative")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrUnsupportedBitDepth = errors.New("bit depth must be 8, 16, 24 or 32")

	ErrEncodeUnsupported = errors.New("no encoder for format")

	ErrHeaderNotWritten = errors.New("header not written yet")
	ErrShortRead        = errors.New("frame source returned fewer frames than requested")
	ErrShortWrite       = errors.New("frame sink accepted fewer frames than requested")

	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
