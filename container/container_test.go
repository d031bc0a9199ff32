package container

import (
	"encoding/binary"
	"testing"
)

// Fixture builders construct minimal images that satisfy each variant's
// signature probe.

func gen3Image(size int) []byte {
	data := make([]byte, size)
	for i := 0; i < sectorCount; i++ {
		base := i * sectorSize
		binary.LittleEndian.PutUint16(data[base+0xFF4:], uint16(i))
		binary.LittleEndian.PutUint32(data[base+0xFF8:], sectorMagic)
	}
	return data
}

func gen4Image() []byte {
	data := make([]byte, 0x80000)
	binary.LittleEndian.PutUint32(data[gen4BlockEnds[0]-0x14:], footerMagic)
	return data
}

func gen5Image() []byte {
	data := make([]byte, 0x80000)
	binary.LittleEndian.PutUint32(data[gen5BlockEnds[0]-0x14:], footerMagic)
	return data
}

func checksumFooterImage(size int) []byte {
	data := make([]byte, size)
	binary.LittleEndian.PutUint32(data[size-0x1F0:], checksumMagic)
	return data
}

func gen1Image() []byte {
	data := make([]byte, 0x8000)
	data[gen1SumStart] = 0x42
	var sum byte
	for _, b := range data[gen1SumStart:gen1SumEnd] {
		sum += b
	}
	data[gen1SumOffset] = ^sum
	return data
}

func gen2Image() []byte {
	data := make([]byte, 0x8000)
	data[gen2SumStart] = 0x12
	data[gen2SumStart+1] = 0x34
	var sum uint16
	for _, b := range data[gen2SumStart:gen2SumEnd] {
		sum += uint16(b)
	}
	binary.LittleEndian.PutUint16(data[gen2SumOffset:], sum)
	return data
}

func TestReadAnyVariant(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		variant    string
		generation int
	}{
		{name: "gen3", data: gen3Image(0x20000), variant: "gen3", generation: 3},
		{name: "gen3 padded", data: gen3Image(0x20010), variant: "gen3", generation: 3},
		{name: "gen4", data: gen4Image(), variant: "gen4", generation: 4},
		{name: "gen5", data: gen5Image(), variant: "gen5", generation: 5},
		{name: "gen6", data: checksumFooterImage(0x65600), variant: "gen6", generation: 6},
		{name: "gen7", data: checksumFooterImage(0x6BE00), variant: "gen7", generation: 7},
		{name: "gen1", data: gen1Image(), variant: "gen1", generation: 1},
		{name: "gen2", data: gen2Image(), variant: "gen2", generation: 2},
		{name: "oversized console", data: make([]byte, SizeOversized), variant: "gen4-console", generation: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ReadAnyVariant(tt.data)
			if err != nil {
				t.Fatalf("ReadAnyVariant error: %v", err)
			}
			if c.Name != tt.variant {
				t.Errorf("Name = %s, want %s", c.Name, tt.variant)
			}
			if c.Generation != tt.generation {
				t.Errorf("Generation = %d, want %d", c.Generation, tt.generation)
			}
			if c.Size() != len(tt.data) {
				t.Errorf("Size = %d, want %d", c.Size(), len(tt.data))
			}
		})
	}
}

func TestReadAnyVariantRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "unknown size", data: make([]byte, 12345)},
		{name: "gen4 size without signature", data: make([]byte, 0x80000)},
		{name: "gen6 size without footer", data: make([]byte, 0x65600)},
		{name: "gen1 size with bad checksum", data: make([]byte, 0x8000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadAnyVariant(tt.data); err == nil {
				t.Error("ReadAnyVariant should decline")
			}
		})
	}
}

func TestSlotGeometry(t *testing.T) {
	c, err := ReadAnyVariant(gen3Image(0x20000))
	if err != nil {
		t.Fatalf("ReadAnyVariant error: %v", err)
	}
	if c.BoxSlotCount != 30 {
		t.Errorf("BoxSlotCount = %d, want 30", c.BoxSlotCount)
	}
	if c.SlotCount() != 14*30 {
		t.Errorf("SlotCount = %d, want %d", c.SlotCount(), 14*30)
	}
}

func TestContainerCopiesData(t *testing.T) {
	data := gen4Image()
	c, err := ReadAnyVariant(data)
	if err != nil {
		t.Fatalf("ReadAnyVariant error: %v", err)
	}

	data[0] = 0xFF
	if c.Bytes()[0] != 0 {
		t.Error("container data should not alias the input buffer")
	}
}

func TestProbeOrderPrefersSignatures(t *testing.T) {
	// gen4 and gen5 share a size; the footer position decides.
	c, err := ReadAnyVariant(gen5Image())
	if err != nil {
		t.Fatalf("ReadAnyVariant error: %v", err)
	}
	if c.Name != "gen5" {
		t.Errorf("Name = %s, want gen5", c.Name)
	}
}
