package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GiftItem is one item on the gift registry.
type GiftItem struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Room       string          `json:"room"`
	Price      decimal.Decimal `json:"price"`
	IsReceived bool            `json:"isReceived"`
	Note       string          `json:"note,omitempty"`
}

// ReceivedGiftCount returns the number of gifts already received.
func (a AppData) ReceivedGiftCount() int {
	count := 0
	for _, gift := range a.Gifts {
		if gift.IsReceived {
			count++
		}
	}

	return count
}

// ReceivedGiftsPercentage returns the share of gifts already received, in
// percent. It is 0 for an empty registry.
func (a AppData) ReceivedGiftsPercentage() float64 {
	if len(a.Gifts) == 0 {
		return 0
	}

	return float64(a.ReceivedGiftCount()) / float64(len(a.Gifts)) * 100
}
