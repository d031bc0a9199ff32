package memcard

import "testing"

func TestValidSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected bool
	}{
		{name: "4 Mbit", size: 0x80000, expected: true},
		{name: "8 Mbit", size: 0x100000, expected: true},
		{name: "16 Mbit", size: 0x200000, expected: true},
		{name: "128 Mbit", size: 0x1000000, expected: true},
		{name: "zero", size: 0, expected: false},
		{name: "off by one", size: 0x80001, expected: false},
		{name: "between sizes", size: 0x180000, expected: false},
		{name: "too large", size: 0x2000000, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSize(tt.size); got != tt.expected {
				t.Errorf("ValidSize(%#x) = %v, want %v", tt.size, got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	img, err := New(make([]byte, 0x80000))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if img.Size() != 0x80000 {
		t.Errorf("Size = %d, want %d", img.Size(), 0x80000)
	}
	if img.BlockCount() != 0x80000/BlockSize {
		t.Errorf("BlockCount = %d, want %d", img.BlockCount(), 0x80000/BlockSize)
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(make([]byte, 100)); err == nil {
		t.Error("New should reject a non-card length")
	}
}

func TestNewCopiesData(t *testing.T) {
	data := make([]byte, 0x80000)
	data[0] = 1

	img, err := New(data)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	data[0] = 0xFF
	if img.Bytes()[0] != 1 {
		t.Error("image data should not alias the input buffer")
	}
}
