// SPDX-License-Identifier: EPL-2.0

package audio

// StorageType selects how samples are represented in the output encoding.
// It is orthogonal to the container format and to the in-memory
// representation (always 32-bit float, interleaved).
type StorageType int

const (
	// StorageInt stores samples as integers scaled by the full-scale
	// factor (1 << (BitDepth-1)) - 1.
	StorageInt StorageType = iota
	// StorageFloat stores unnormalized 32-bit float samples. Only the
	// dedicated compressed backend distinguishes this at the bitstream
	// level, via its normalization exponent field.
	StorageFloat
	// StorageNormalizedFloat stores 32-bit float samples normalized to
	// [-1, 1].
	StorageNormalizedFloat
)

func (t StorageType) String() string {
	switch t {
	case StorageInt:
		return "int"
	case StorageFloat:
		return "float"
	case StorageNormalizedFloat:
		return "normalized float"
	}
	return "unknown"
}

// IsFloat reports whether t is one of the float storage types.
func (t StorageType) IsFloat() bool {
	return t == StorageFloat || t == StorageNormalizedFloat
}
