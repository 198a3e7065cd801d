package models

import (
	"github.com/google/uuid"
)

// Guest is one invited person.
type Guest struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Group       string    `json:"group"` // references an entry in AppData.GuestGroups
	Contact     string    `json:"contact"`
	IsConfirmed bool      `json:"isConfirmed"`
	Note        string    `json:"note"`
}

// ConfirmedGuestCount returns the number of guests that confirmed.
func (a AppData) ConfirmedGuestCount() int {
	count := 0
	for _, guest := range a.Guests {
		if guest.IsConfirmed {
			count++
		}
	}

	return count
}

// TotalGuestCount returns the number of invited guests.
func (a AppData) TotalGuestCount() int {
	return len(a.Guests)
}
