// Package models implements the planning document and the calculations on it.
package models

import (
	"time"

	"github.com/bellanote/backend/internal/types"
)

// InitialGuestGroups are the guest groups a fresh installation starts with.
var InitialGuestGroups = []string{
	"Família da Noiva",
	"Família do Noivo",
	"Amigos da Noiva",
	"Amigos do Noivo",
	"Colegas",
}

// AppData is the complete planning document of an installation. It is
// persisted atomically as a single JSON document.
type AppData struct {
	WeddingDate      types.Date     `json:"weddingDate"`
	Budget           Budget         `json:"budget"`
	Transactions     []Transaction  `json:"transactions"`
	Vendors          []Vendor       `json:"vendors"`
	Guests           []Guest        `json:"guests"`
	Tasks            []Task         `json:"tasks"`
	Gifts            []GiftItem     `json:"gifts"`
	GuestGroups      []string       `json:"guestGroups"`
	UserProfile      UserProfile    `json:"userProfile"`
	WeddingDetails   WeddingDetails `json:"weddingDetails"`
	SelectedPackages []string       `json:"selectedPackages"`
}

// DefaultAppData returns the document of a fresh installation.
func DefaultAppData() AppData {
	return AppData{
		Budget:           Budget{Categories: []BudgetCategory{}},
		Transactions:     []Transaction{},
		Vendors:          []Vendor{},
		Guests:           []Guest{},
		Tasks:            []Task{},
		Gifts:            []GiftItem{},
		GuestGroups:      append([]string{}, InitialGuestGroups...),
		SelectedPackages: []string{},
	}
}

// backfill initializes top-level fields that are missing from documents
// written by older versions. It reports whether anything was changed.
func (a *AppData) backfill() bool {
	changed := false

	if len(a.GuestGroups) == 0 {
		a.GuestGroups = append([]string{}, InitialGuestGroups...)
		changed = true
	}

	if a.Budget.Categories == nil {
		a.Budget.Categories = []BudgetCategory{}
		changed = true
	}

	if a.Transactions == nil {
		a.Transactions = []Transaction{}
		changed = true
	}

	if a.Vendors == nil {
		a.Vendors = []Vendor{}
		changed = true
	}

	for i := range a.Vendors {
		if a.Vendors[i].Payments == nil {
			a.Vendors[i].Payments = []Payment{}
			changed = true
		}

		if a.Vendors[i].Attachments == nil {
			a.Vendors[i].Attachments = []VendorAttachment{}
			changed = true
		}
	}

	if a.Guests == nil {
		a.Guests = []Guest{}
		changed = true
	}

	if a.Tasks == nil {
		a.Tasks = []Task{}
		changed = true
	}

	if a.Gifts == nil {
		a.Gifts = []GiftItem{}
		changed = true
	}

	if a.SelectedPackages == nil {
		a.SelectedPackages = []string{}
		changed = true
	}

	return changed
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (a AppData) Clone() AppData {
	clone := a

	clone.Budget.Categories = append([]BudgetCategory{}, a.Budget.Categories...)
	clone.Transactions = append([]Transaction{}, a.Transactions...)
	clone.Guests = append([]Guest{}, a.Guests...)
	clone.Tasks = append([]Task{}, a.Tasks...)
	clone.Gifts = append([]GiftItem{}, a.Gifts...)
	clone.GuestGroups = append([]string{}, a.GuestGroups...)
	clone.SelectedPackages = append([]string{}, a.SelectedPackages...)

	clone.Vendors = make([]Vendor, len(a.Vendors))
	for i, vendor := range a.Vendors {
		clone.Vendors[i] = vendor
		clone.Vendors[i].Payments = append([]Payment{}, vendor.Payments...)
		clone.Vendors[i].Attachments = append([]VendorAttachment{}, vendor.Attachments...)
	}

	return clone
}

// MonthsUntilWedding returns the number of months from now until the
// wedding, counting the current month. It is 0 when no wedding date is set
// or the wedding is in the past.
func (a AppData) MonthsUntilWedding(now time.Time) int {
	if a.WeddingDate.IsZero() {
		return 0
	}

	wedding := a.WeddingDate.Time()
	if !wedding.After(now) {
		return 0
	}

	months := (wedding.Year()-now.Year())*12 + int(wedding.Month()) - int(now.Month())
	if types.DateOf(now).AddMonths(months).After(a.WeddingDate) {
		months--
	}

	// +1 to include the current month
	return months + 1
}
