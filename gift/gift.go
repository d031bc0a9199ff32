// Package gift recognizes event-gift records. Gift formats are keyed by
// file extension first; sizes alone are too ambiguous to be authoritative.
package gift

import (
	"errors"
	"fmt"
	"strings"
)

// Known gift extensions, lowercase with leading dot.
const (
	ExtDelivery  = ".pgt" // gen 4 delivery payload
	ExtCard4     = ".pcd" // gen 4 card + payload
	ExtCard5     = ".pgf" // gen 5
	ExtCard6     = ".wc6" // gen 6
	ExtCard6Full = ".wc6full"
	ExtCard7     = ".wc7" // gen 7
	ExtCard7Full = ".wc7full"
	ExtCard8     = ".wc8" // gen 8
)

// Format describes one gift format: its extension key, exact byte length,
// and originating generation.
type Format struct {
	Ext        string
	Size       int
	Generation int
}

// formats is keyed by extension; ordered newest first so the size-only
// fallback prefers current formats.
var formats = []Format{
	{Ext: ExtCard8, Size: 0x2D0, Generation: 8},
	{Ext: ExtCard7Full, Size: 780, Generation: 7},
	{Ext: ExtCard7, Size: 264, Generation: 7},
	{Ext: ExtCard6Full, Size: 784, Generation: 6},
	{Ext: ExtCard6, Size: 264, Generation: 6},
	{Ext: ExtCard5, Size: 204, Generation: 5},
	{Ext: ExtCard4, Size: 856, Generation: 4},
	{Ext: ExtDelivery, Size: 260, Generation: 4},
}

// Common errors returned by FromBytes.
var (
	ErrSizeMismatch = errors.New("length does not match gift format")
	ErrUnknownGift  = errors.New("no gift format matches")
)

// Formats returns a copy of the supported format table.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Gift is a recognized event-gift record.
type Gift struct {
	Ext        string
	Generation int

	data []byte
}

// FromBytes builds a Gift from raw bytes. A recognized extension hint pins
// the format and the length must match it exactly; an unknown or empty
// hint falls back to a size-only sweep of the table.
func FromBytes(data []byte, hint string) (*Gift, error) {
	hint = strings.ToLower(strings.TrimSpace(hint))

	if f, ok := byExt(hint); ok {
		if len(data) != f.Size {
			return nil, fmt.Errorf("%w: %s wants %d bytes, got %d", ErrSizeMismatch, f.Ext, f.Size, len(data))
		}
		return build(f, data), nil
	}

	for _, f := range formats {
		if len(data) == f.Size {
			return build(f, data), nil
		}
	}
	return nil, fmt.Errorf("%w: %d bytes", ErrUnknownGift, len(data))
}

func byExt(ext string) (Format, bool) {
	for _, f := range formats {
		if f.Ext == ext {
			return f, true
		}
	}
	return Format{}, false
}

func build(f Format, data []byte) *Gift {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Gift{Ext: f.Ext, Generation: f.Generation, data: buf}
}

// Bytes returns a copy of the raw record.
func (g *Gift) Bytes() []byte {
	out := make([]byte, len(g.data))
	copy(out, g.data)
	return out
}

// Size returns the record length in bytes.
func (g *Gift) Size() int {
	return len(g.data)
}
