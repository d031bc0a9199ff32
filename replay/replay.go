// Package replay recognizes recorded-battle-video dumps across the known
// format revisions. Each revision has an exact byte length plus a small
// header probe; sizes never overlap between revisions.
package replay

import (
	"errors"
	"fmt"
)

// Variant describes one battle-video revision.
type Variant struct {
	Name       string
	Generation int
	Size       int

	// Header layout checked by the probe.
	modeOffset int
	maxMode    byte
}

// variants lists the recognizable revisions, newest first.
var variants = []Variant{
	{Name: "bv7", Generation: 7, Size: 0x2BC0, modeOffset: 0x04, maxMode: 6},
	{Name: "bv6", Generation: 6, Size: 0x2E60, modeOffset: 0x04, maxMode: 6},
	{Name: "bv5", Generation: 5, Size: 0x18C0, modeOffset: 0x00, maxMode: 5},
}

// ErrNoVariant indicates no revision accepted the buffer.
var ErrNoVariant = errors.New("no battle video variant matches")

// Variants returns a copy of the variant table.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Video is a recognized battle-video dump.
type Video struct {
	Name       string
	Generation int

	data []byte
}

// ReadAnyVariant returns a Video for the first revision whose size and
// header probe both accept the buffer.
func ReadAnyVariant(data []byte) (*Video, error) {
	for _, v := range variants {
		if len(data) != v.Size {
			continue
		}
		if data[v.modeOffset] > v.maxMode {
			continue
		}
		buf := make([]byte, len(data))
		copy(buf, data)
		return &Video{Name: v.Name, Generation: v.Generation, data: buf}, nil
	}
	return nil, fmt.Errorf("%w: %d bytes", ErrNoVariant, len(data))
}

// Size returns the dump length in bytes.
func (v *Video) Size() int {
	return len(v.data)
}

// Bytes returns a copy of the raw dump.
func (v *Video) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}
