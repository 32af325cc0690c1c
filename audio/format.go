// SPDX-License-Identifier: EPL-2.0

package audio

// Format identifies a supported container format. The set is closed:
// adding a format means adding a catalog entry in the root package and a
// backend binding under formats/.
type Format int

const (
	FormatFLAC Format = iota
	FormatMP3
	FormatOGG
	FormatWAV

	// NumFormats is the number of supported container formats.
	NumFormats = 4
)

func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "flac"
	case FormatMP3:
		return "mp3"
	case FormatOGG:
		return "ogg vorbis"
	case FormatWAV:
		return "wav"
	}
	return "unknown"
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f >= FormatFLAC && f < NumFormats
}
