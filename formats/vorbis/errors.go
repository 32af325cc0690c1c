// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotVorbisStream = errors.New("not an Ogg Vorbis stream")
	ErrUnknownLength   = errors.New("cannot determine Ogg Vorbis stream length")
	ErrSeekOutOfRange  = errors.New("seek position outside stream")
)
