package savekit

import (
	"github.com/retrosave/savekit/container"
	"github.com/retrosave/savekit/entity"
	"github.com/retrosave/savekit/gift"
	"github.com/retrosave/savekit/memcard"
	"github.com/retrosave/savekit/replay"
)

// Recognizer is a stateless predicate+constructor over one format family.
// Implementations never mutate data and fold collaborator parse failures
// into a declined result instead of returning an error.
type Recognizer interface {
	// Name returns a short identifier for logging.
	Name() string

	// TryRecognize inspects the buffer and either yields a populated
	// result or declines.
	TryRecognize(data []byte, hint Hint, ctx *ReferenceContext) (*DetectionResult, bool)
}

// recognizers is the fixed priority chain. Signature-specific formats are
// declared before size-heuristic ones so a loose match never shadows a
// specific one; gifts come last because their sizes are the most
// ambiguous. The set and order are closed; detection short-circuits on
// the first match.
var recognizers = []Recognizer{
	saveContainerRecognizer{},
	memoryCardRecognizer{},
	entityRecognizer{},
	boxContainerRecognizer{},
	battleVideoRecognizer{},
	giftRecognizer{},
}

// saveContainerRecognizer wraps the variant save detector. Hint and
// context are unused: container signatures are the most specific probes
// in the chain.
type saveContainerRecognizer struct{}

func (saveContainerRecognizer) Name() string { return "save-container" }

func (saveContainerRecognizer) TryRecognize(data []byte, _ Hint, _ *ReferenceContext) (*DetectionResult, bool) {
	c, err := container.ReadAnyVariant(data)
	if err != nil {
		return nil, false
	}
	return &DetectionResult{Kind: KindSaveContainer, Container: c}, true
}

// memoryCardRecognizer matches the closed set of exact card image sizes.
type memoryCardRecognizer struct{}

func (memoryCardRecognizer) Name() string { return "memory-card" }

func (memoryCardRecognizer) TryRecognize(data []byte, _ Hint, _ *ReferenceContext) (*DetectionResult, bool) {
	img, err := memcard.New(data)
	if err != nil {
		return nil, false
	}
	return &DetectionResult{Kind: KindMemoryCard, MemoryCard: img}, true
}

// entityRecognizer builds a single typed record. Raw records are untagged
// fixed-size blobs, so the extension hint is the primary signal and the
// context generation the secondary one; exact length validation belongs
// to the entity constructor.
type entityRecognizer struct{}

func (entityRecognizer) Name() string { return "entity" }

func (entityRecognizer) TryRecognize(data []byte, hint Hint, ctx *ReferenceContext) (*DetectionResult, bool) {
	// The gen 4 delivery gift shares its byte length with a party-sized
	// entity; that extension must never match here on size alone.
	if hint == Hint(gift.ExtDelivery) {
		return nil, false
	}

	fallback := entity.BaselineGeneration
	if ctx != nil {
		fallback = ctx.Generation
	}
	prefer := entity.FormatFromHint(hint.String(), fallback)

	e, err := entity.FromBytes(data, prefer)
	if err != nil {
		return nil, false
	}
	return &DetectionResult{Kind: KindEntity, Entity: e}, true
}

// boxContainerRecognizer splits a concatenated box dump against the
// reference container's slot geometry. Pure length-divisibility
// heuristic, so it runs after every signature-specific recognizer.
type boxContainerRecognizer struct{}

func (boxContainerRecognizer) Name() string { return "box-container" }

func (boxContainerRecognizer) TryRecognize(data []byte, _ Hint, ctx *ReferenceContext) (*DetectionResult, bool) {
	if ctx == nil {
		// a concatenated dump can only be validated against a specific
		// container's slot geometry
		return nil, false
	}

	// Both divisors are tried independently; it is not assumed that one
	// subsumes the other.
	for _, slots := range []int{ctx.SlotCount, ctx.BoxSlotCount} {
		if slots <= 0 || len(data)%slots != 0 {
			continue
		}
		per := len(data) / slots
		if !entity.IsKnownSize(per) {
			continue
		}
		return &DetectionResult{Kind: KindEntityList, Entities: splitSlots(data, per)}, true
	}
	return nil, false
}

// splitSlots slices data into equal-length records, preserving order.
// Each slice is copied so the result never aliases the input buffer.
func splitSlots(data []byte, per int) [][]byte {
	out := make([][]byte, 0, len(data)/per)
	for off := 0; off < len(data); off += per {
		slot := make([]byte, per)
		copy(slot, data[off:off+per])
		out = append(out, slot)
	}
	return out
}

// battleVideoRecognizer wraps the variant battle-video detector.
type battleVideoRecognizer struct{}

func (battleVideoRecognizer) Name() string { return "battle-video" }

func (battleVideoRecognizer) TryRecognize(data []byte, _ Hint, _ *ReferenceContext) (*DetectionResult, bool) {
	v, err := replay.ReadAnyVariant(data)
	if err != nil {
		return nil, false
	}
	return &DetectionResult{Kind: KindBattleVideo, Video: v}, true
}

// giftRecognizer wraps the extension-keyed gift constructor.
type giftRecognizer struct{}

func (giftRecognizer) Name() string { return "gift" }

func (giftRecognizer) TryRecognize(data []byte, hint Hint, _ *ReferenceContext) (*DetectionResult, bool) {
	g, err := gift.FromBytes(data, hint.String())
	if err != nil {
		return nil, false
	}
	return &DetectionResult{Kind: KindGift, Gift: g}, true
}
