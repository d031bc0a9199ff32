package savekit

import (
	"github.com/retrosave/savekit/container"
	"github.com/retrosave/savekit/entity"
	"github.com/retrosave/savekit/gift"
	"github.com/retrosave/savekit/memcard"
	"github.com/retrosave/savekit/replay"
)

// Kind identifies which variant of a DetectionResult is populated.
type Kind int

const (
	KindNone Kind = iota
	KindSaveContainer
	KindMemoryCard
	KindEntity
	KindEntityList
	KindBattleVideo
	KindGift
)

// String returns a short stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSaveContainer:
		return "save-container"
	case KindMemoryCard:
		return "memory-card"
	case KindEntity:
		return "entity"
	case KindEntityList:
		return "entity-list"
	case KindBattleVideo:
		return "battle-video"
	case KindGift:
		return "gift"
	default:
		return "none"
	}
}

// DetectionResult is the tagged union returned by detection. Exactly one
// variant field is populated for a recognized buffer; KindNone carries no
// payload.
type DetectionResult struct {
	Kind Kind

	Container  *container.Container
	MemoryCard *memcard.Image
	Entity     *entity.Entity
	Entities   [][]byte // ordered raw slices of a box-container dump
	Video      *replay.Video
	Gift       *gift.Gift
}

// None returns the unrecognized result.
func None() *DetectionResult {
	return &DetectionResult{Kind: KindNone}
}

// Recognized reports whether the result carries a populated variant.
func (r *DetectionResult) Recognized() bool {
	return r != nil && r.Kind != KindNone
}
