// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile         = errors.New("not a WAV file")
	ErrOnlyPCMSupported   = errors.New("only integer PCM WAV supported")
	ErrUnsupportedStorage = errors.New("WAV encoder supports integer storage only")
	ErrSeekOutOfRange     = errors.New("seek position outside stream")
	ErrTruncatedStream    = errors.New("WAV data chunk shorter than header declares")
)
