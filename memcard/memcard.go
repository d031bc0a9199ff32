// Package memcard recognizes console memory-card images, which are
// identified purely by a closed set of exact byte lengths.
package memcard

import (
	"errors"
	"fmt"
)

// BlockSize is the allocation unit of a memory-card image.
const BlockSize = 0x2000

// ValidSizes is the closed set of legal memory-card image lengths, from
// the smallest retail card up to the largest third-party card.
var ValidSizes = []int{
	0x0080000, // 4 Mbit
	0x0100000, // 8 Mbit
	0x0200000, // 16 Mbit
	0x0400000, // 32 Mbit
	0x0800000, // 64 Mbit
	0x1000000, // 128 Mbit
}

// ErrInvalidSize indicates the buffer length is not a legal card size.
var ErrInvalidSize = errors.New("not a valid memory card size")

// ValidSize reports whether n is a legal memory-card image length.
func ValidSize(n int64) bool {
	for _, s := range ValidSizes {
		if n == int64(s) {
			return true
		}
	}
	return false
}

// Image wraps a raw memory-card dump. Construction only checks the size;
// full parsing of the card directory happens elsewhere.
type Image struct {
	data []byte
}

// New wraps data as a memory-card image, rejecting illegal lengths.
func New(data []byte) (*Image, error) {
	if !ValidSize(int64(len(data))) {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Image{data: buf}, nil
}

// Size returns the image length in bytes.
func (m *Image) Size() int {
	return len(m.data)
}

// BlockCount returns the number of allocation blocks on the card.
func (m *Image) BlockCount() int {
	return len(m.data) / BlockSize
}

// Bytes returns a copy of the raw image.
func (m *Image) Bytes() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}
