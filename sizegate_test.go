package savekit

import "testing"

func TestTooSmall(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected bool
	}{
		{name: "zero", size: 0, expected: true},
		{name: "one below minimum", size: 31, expected: true},
		{name: "exact minimum", size: 32, expected: false},
		{name: "comfortably above", size: 1024, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TooSmall(tt.size); got != tt.expected {
				t.Errorf("TooSmall(%d) = %v, want %v", tt.size, got, tt.expected)
			}
		})
	}
}

func TestTooBig(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected bool
	}{
		{name: "small", size: 1024, expected: false},
		{name: "exact ceiling", size: 0x100000, expected: false},
		{name: "one above ceiling", size: 0x100001, expected: true},
		{name: "oversized container exception", size: 0x380000, expected: false},
		{name: "one above exception", size: 0x380001, expected: true},
		{name: "memory card 16 Mbit", size: 0x200000, expected: false},
		{name: "memory card 128 Mbit", size: 0x1000000, expected: false},
		{name: "between card sizes", size: 0x300000, expected: true},
		{name: "multi gigabyte", size: 4 << 30, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TooBig(tt.size); got != tt.expected {
				t.Errorf("TooBig(%#x) = %v, want %v", tt.size, got, tt.expected)
			}
		})
	}
}
