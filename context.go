package savekit

import "github.com/retrosave/savekit/container"

// ReferenceContext supplies read-only facts about a target container used
// to disambiguate context-sensitive formats. It is passed explicitly on
// every call; a nil context makes context-dependent recognizers decline.
type ReferenceContext struct {
	// Generation of the target container's entity format.
	Generation int

	// SlotCount is the total number of storage slots across all boxes.
	SlotCount int

	// BoxSlotCount is the number of slots in a single box.
	BoxSlotCount int
}

// NewReference builds a ReferenceContext from a recognized save container.
func NewReference(c *container.Container) *ReferenceContext {
	return &ReferenceContext{
		Generation:   c.Generation,
		SlotCount:    c.SlotCount(),
		BoxSlotCount: c.BoxSlotCount,
	}
}
