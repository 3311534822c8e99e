package shop

import (
	"github.com/JohanGylseth/Sami-2/internal/catalog"
	"github.com/JohanGylseth/Sami-2/internal/progress"
)

// Status classifies a purchase attempt. None of these are errors; an
// unaffordable or repeated purchase is a normal outcome the shop screen
// renders.
type Status string

const (
	StatusPurchased          Status = "purchased"
	StatusUnknownItem        Status = "unknown_item"
	StatusAlreadyOwned       Status = "already_owned"
	StatusInsufficientTokens Status = "insufficient_tokens"
)

// Outcome reports a purchase attempt and the resulting balance.
type Outcome struct {
	Status Status              `json:"status"`
	Item   catalog.VillageItem `json:"item,omitempty"`
	Tokens int                 `json:"tokens"`
}

// Shop sells village items against a tracker's token balance.
type Shop struct {
	tracker *progress.Tracker
}

func New(tracker *progress.Tracker) *Shop {
	return &Shop{tracker: tracker}
}

// Purchase debits the item's cost and records ownership as one atomic
// pair: a rejected purchase changes nothing, a granted one is persisted
// with both effects in a single write.
func (s *Shop) Purchase(itemID string) Outcome {
	item, ok := catalog.VillageItemByID(itemID)
	if !ok {
		return Outcome{Status: StatusUnknownItem, Tokens: s.tracker.TokenCount()}
	}

	already, bought := s.tracker.BuyVillageItem(item.ID, item.Cost)
	out := Outcome{Item: item, Tokens: s.tracker.TokenCount()}
	switch {
	case already:
		out.Status = StatusAlreadyOwned
	case bought:
		out.Status = StatusPurchased
	default:
		out.Status = StatusInsufficientTokens
	}
	return out
}
