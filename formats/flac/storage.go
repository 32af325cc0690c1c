// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"github.com/mewkiz/flac/meta"

	"github.com/ik5/audiorw/audio"
)

// Sample-layout signaling at the bitstream level. The keys live in the
// stream's Vorbis comment block; the exponent values follow the WavPack
// convention for float data.
//
// The frame encoder cannot carry a 32-bit sample word, so streams whose
// logical word is 32 bits (float storage of either kind, or 32-bit
// integer storage) are written as pairs of 16-bit samples, high half
// first, and marked with the split tag.
const (
	storageTag = "AUDIORW_STORAGE"
	normExpTag = "AUDIORW_FLOAT_NORM_EXP"
	splitTag   = "AUDIORW_SAMPLE_SPLIT"

	storageFloat           = "float"
	storageNormalizedFloat = "normalized-float"

	normalizedFloatExp   = "127"
	unnormalizedFloatExp = "128"

	splitHalves = "16x2"
)

// layoutBlock builds the Vorbis comment block describing how samples are
// represented on the stream.
func layoutBlock(storage audio.StorageType, split bool) *meta.Block {
	tags := make([][2]string, 0, 3)
	if storage.IsFloat() {
		value, exp := storageFloat, unnormalizedFloatExp
		if storage == audio.StorageNormalizedFloat {
			value, exp = storageNormalizedFloat, normalizedFloatExp
		}
		tags = append(tags,
			[2]string{storageTag, value},
			[2]string{normExpTag, exp})
	}
	if split {
		tags = append(tags, [2]string{splitTag, splitHalves})
	}
	return &meta.Block{
		Header: meta.Header{Type: meta.TypeVorbisComment},
		Body: &meta.VorbisComment{
			Vendor: "audiorw",
			Tags:   tags,
		},
	}
}

// streamLayout inspects the parsed metadata blocks and reports the
// storage type and whether sample words are split. Streams without tags
// are plain integer FLAC.
func streamLayout(blocks []*meta.Block) (storage audio.StorageType, split bool, err error) {
	storage = audio.StorageInt
	for _, block := range blocks {
		comment, ok := block.Body.(*meta.VorbisComment)
		if !ok {
			continue
		}
		for _, tag := range comment.Tags {
			switch tag[0] {
			case storageTag:
				switch tag[1] {
				case storageFloat:
					storage = audio.StorageFloat
				case storageNormalizedFloat:
					storage = audio.StorageNormalizedFloat
				default:
					return audio.StorageInt, false, ErrInvalidStorageTag
				}
			case splitTag:
				if tag[1] != splitHalves {
					return audio.StorageInt, false, ErrInvalidStorageTag
				}
				split = true
			}
		}
	}
	if storage.IsFloat() && !split {
		// Float bit patterns only exist in the split representation.
		return audio.StorageInt, false, ErrInvalidStorageTag
	}
	return storage, split, nil
}

// splitWord stores a 32-bit sample word as two consecutive 16-bit
// samples, high half first. Both halves fit a signed 16-bit range.
func splitWord(dst []int32, word int32) {
	dst[0] = word >> 16
	dst[1] = int32(int16(word))
}

// joinWord restores a 32-bit sample word from its two halves.
func joinWord(hi, lo int32) int32 {
	return hi<<16 | int32(uint16(lo))
}
