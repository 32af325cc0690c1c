// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"path/filepath"
	"strings"

	"github.com/ik5/audiorw/audio"
)

// FormatHint is the caller's format preference for probing: either a
// single-format restriction or an ordered sequence trying the preferred
// format first and the remaining formats in a fixed fallback order. Hints
// are built from the catalog and never mutated.
type FormatHint struct {
	candidates []audio.Format
}

// Candidates returns the probe order.
func (h FormatHint) Candidates() []audio.Format {
	out := make([]audio.Format, len(h.candidates))
	copy(out, h.candidates)
	return out
}

// formatInfo is one row of the immutable format catalog: the canonical
// uppercase extension marker and the probe order used when the format is
// the caller's first guess.
type formatInfo struct {
	format audio.Format
	ext    string
	probe  [audio.NumFormats]audio.Format
}

var formatTable = [audio.NumFormats]formatInfo{
	audio.FormatFLAC: {
		format: audio.FormatFLAC,
		ext:    ".FLAC",
		probe:  [...]audio.Format{audio.FormatFLAC, audio.FormatWAV, audio.FormatMP3, audio.FormatOGG},
	},
	audio.FormatMP3: {
		format: audio.FormatMP3,
		ext:    ".MP3",
		probe:  [...]audio.Format{audio.FormatMP3, audio.FormatWAV, audio.FormatFLAC, audio.FormatOGG},
	},
	audio.FormatOGG: {
		format: audio.FormatOGG,
		ext:    ".OGG",
		probe:  [...]audio.Format{audio.FormatOGG, audio.FormatWAV, audio.FormatMP3, audio.FormatFLAC},
	},
	audio.FormatWAV: {
		format: audio.FormatWAV,
		ext:    ".WAV",
		probe:  [...]audio.Format{audio.FormatWAV, audio.FormatMP3, audio.FormatFLAC, audio.FormatOGG},
	},
}

// TryOnly restricts probing to f alone.
func TryOnly(f audio.Format) FormatHint {
	return FormatHint{candidates: []audio.Format{f}}
}

// TryFirst probes f first, then the remaining formats in the catalog's
// fallback order. An invalid format yields an empty hint, which fails
// probing with audio.ErrUnknownFormat.
func TryFirst(f audio.Format) FormatHint {
	if !f.Valid() {
		return FormatHint{}
	}
	probe := formatTable[f].probe
	return FormatHint{candidates: probe[:]}
}

// KnownFileExtensions returns the canonical extension markers of all
// supported formats.
func KnownFileExtensions() []string {
	out := make([]string, 0, len(formatTable))
	for _, info := range formatTable {
		out = append(out, info.ext)
	}
	return out
}

// MakeFormatHint derives a hint from a file path's extension. With tryAll
// set, the hint probes the matched format first and falls back to the
// others; otherwise it restricts probing to the matched format. Unknown or
// missing extensions yield ok == false and the caller decides the fallback
// policy.
func MakeFormatHint(path string, tryAll bool) (FormatHint, bool) {
	info, ok := findFormatInfo(filepath.Ext(path))
	if !ok {
		return FormatHint{}, false
	}
	if tryAll {
		return TryFirst(info.format), true
	}
	return TryOnly(info.format), true
}

func findFormatInfo(ext string) (formatInfo, bool) {
	if ext == "" {
		return formatInfo{}, false
	}
	search := strings.ToUpper(ext)
	if !strings.HasPrefix(search, ".") {
		search = "." + search
	}
	for _, info := range formatTable {
		if info.ext == search {
			return info, true
		}
	}
	return formatInfo{}, false
}
