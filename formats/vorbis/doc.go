// SPDX-License-Identifier: EPL-2.0

// Package vorbis binds Ogg Vorbis decoding to the stream layer via
// github.com/jfreymuth/oggvorbis. The binding is decode-only: no Vorbis
// encoder exists in the Go ecosystem.
//
// Vorbis decodes natively to float samples, so the header reports a bit
// depth of 32 and no integer scaling happens on this path.
package vorbis
