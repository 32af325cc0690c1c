// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacStream       = errors.New("not a FLAC stream")
	ErrTooManyChannels     = errors.New("FLAC encoder supports mono and stereo only")
	ErrSeekOutOfRange      = errors.New("seek position outside stream")
	ErrTruncatedStream     = errors.New("FLAC stream shorter than stream info declares")
	ErrInvalidStorageTag   = errors.New("invalid storage tag in FLAC stream")
	ErrInvalidSampleLayout = errors.New("invalid split sample layout in FLAC stream")
)
