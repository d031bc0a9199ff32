package savekit

import (
	"github.com/retrosave/savekit/container"
	"github.com/retrosave/savekit/memcard"
)

// Size bounds forming the detection wire contract. Buffers outside these
// bounds are rejected before any recognizer runs.
const (
	// MinSize is the smallest buffer that can hold any supported header.
	MinSize = 0x20

	// MaxSize is the general upper bound (1 MiB). Larger buffers are
	// rejected unless a named exception applies.
	MaxSize = 0x100000
)

// TooSmall reports whether a buffer of n bytes is below the minimum
// detectable size.
func TooSmall(n int64) bool {
	return n < MinSize
}

// TooBig reports whether a buffer of n bytes exceeds the maximum
// detectable size. The oversized console container and valid memory-card
// image lengths are exempt from the general ceiling.
func TooBig(n int64) bool {
	if n <= MaxSize {
		return false
	}
	if n == container.SizeOversized {
		return false
	}
	if memcard.ValidSize(n) {
		return false
	}
	return true
}
