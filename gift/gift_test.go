package gift

import "testing"

func TestFromBytesWithHint(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		hint       string
		ext        string
		generation int
	}{
		{name: "delivery", length: 260, hint: ".pgt", ext: ExtDelivery, generation: 4},
		{name: "card4", length: 856, hint: ".pcd", ext: ExtCard4, generation: 4},
		{name: "card5", length: 204, hint: ".pgf", ext: ExtCard5, generation: 5},
		{name: "card6", length: 264, hint: ".wc6", ext: ExtCard6, generation: 6},
		{name: "card6 full", length: 784, hint: ".wc6full", ext: ExtCard6Full, generation: 6},
		{name: "card7", length: 264, hint: ".wc7", ext: ExtCard7, generation: 7},
		{name: "card8", length: 0x2D0, hint: ".wc8", ext: ExtCard8, generation: 8},
		{name: "uppercase hint", length: 204, hint: ".PGF", ext: ExtCard5, generation: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromBytes(make([]byte, tt.length), tt.hint)
			if err != nil {
				t.Fatalf("FromBytes error: %v", err)
			}
			if g.Ext != tt.ext {
				t.Errorf("Ext = %s, want %s", g.Ext, tt.ext)
			}
			if g.Generation != tt.generation {
				t.Errorf("Generation = %d, want %d", g.Generation, tt.generation)
			}
			if g.Size() != tt.length {
				t.Errorf("Size = %d, want %d", g.Size(), tt.length)
			}
		})
	}
}

func TestFromBytesHintSizeMismatch(t *testing.T) {
	if _, err := FromBytes(make([]byte, 100), ".pgt"); err == nil {
		t.Error("FromBytes should reject a size mismatch for a pinned extension")
	}
}

func TestFromBytesSizeFallback(t *testing.T) {
	// Unknown hints fall back to a size-only sweep.
	g, err := FromBytes(make([]byte, 204), ".bin")
	if err != nil {
		t.Fatalf("FromBytes error: %v", err)
	}
	if g.Ext != ExtCard5 {
		t.Errorf("Ext = %s, want %s", g.Ext, ExtCard5)
	}

	// 264 bytes is shared by wc6/wc7; the sweep prefers the newer format.
	g, err = FromBytes(make([]byte, 264), "")
	if err != nil {
		t.Fatalf("FromBytes error: %v", err)
	}
	if g.Ext != ExtCard7 {
		t.Errorf("Ext = %s, want %s", g.Ext, ExtCard7)
	}
}

func TestFromBytesUnknownSize(t *testing.T) {
	if _, err := FromBytes(make([]byte, 99), ""); err == nil {
		t.Error("FromBytes should fail when nothing matches")
	}
}

func TestGiftCopiesData(t *testing.T) {
	data := make([]byte, 260)
	data[0] = 7

	g, err := FromBytes(data, ".pgt")
	if err != nil {
		t.Fatalf("FromBytes error: %v", err)
	}

	data[0] = 0xFF
	if g.Bytes()[0] != 7 {
		t.Error("gift data should not alias the input buffer")
	}
}
