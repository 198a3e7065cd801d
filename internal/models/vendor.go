package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/bellanote/backend/internal/types"
)

// PaymentType is the way a vendor contract is paid.
type PaymentType string

const (
	PaymentTypeSingle      PaymentType = "single"
	PaymentTypeInstallment PaymentType = "installment"
)

// PaymentTypes returns all valid payment types.
func PaymentTypes() []PaymentType {
	return []PaymentType{PaymentTypeSingle, PaymentTypeInstallment}
}

// Payment is one scheduled payment of a vendor contract.
type Payment struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     types.Date      `json:"dueDate"`
	IsPaid      bool            `json:"isPaid"`
	Description string          `json:"description"`
}

// VendorAttachment is a file stored with a vendor, e.g. a quote or the
// signed contract. The content is kept inline as a data URL.
type VendorAttachment struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	DataURL    string    `json:"dataUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Vendor is a service provider for the wedding. A vendor starts out as a
// candidate and becomes contracted with a payment schedule.
type Vendor struct {
	ID                  uuid.UUID          `json:"id"`
	Name                string             `json:"name"`
	Category            string             `json:"category"` // references BudgetCategory.Name
	Description         string             `json:"description"`
	Contact             string             `json:"contact"`
	Price               decimal.Decimal    `json:"price"` // original quote
	Rating              float64            `json:"rating,omitempty"`
	IsContracted        bool               `json:"isContracted"`
	TotalContractAmount decimal.Decimal    `json:"totalContractAmount"`
	PaymentType         PaymentType        `json:"paymentType"`
	PaidAmount          decimal.Decimal    `json:"paidAmount"`
	Payments            []Payment          `json:"payments"`
	Attachments         []VendorAttachment `json:"attachments"`
}

// CalculatePaidAmount returns the sum of all paid payments.
func (v Vendor) CalculatePaidAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, payment := range v.Payments {
		if payment.IsPaid {
			sum = sum.Add(payment.Amount)
		}
	}

	return sum
}

// newPaymentID returns the ID for the payment at the given position in
// the schedule, e.g. "payment-1-3e8f21c0".
func newPaymentID(position int) string {
	return fmt.Sprintf("payment-%d-%s", position, uuid.NewString()[:8])
}

// NewSinglePayment returns the one payment of a contract paid in full.
func NewSinglePayment(amount decimal.Decimal, dueDate types.Date, vendorName string) Payment {
	return Payment{
		ID:          newPaymentID(1),
		Amount:      amount,
		DueDate:     dueDate,
		Description: fmt.Sprintf("Pagamento único - %s", vendorName),
	}
}

// GenerateInstallmentPayments splits a contract amount into monthly
// installments starting at the first due date.
//
// Every installment except the last one is the total divided by the
// number of installments, rounded down to two decimal places. The last
// installment is the remainder, so the installments always sum up to
// exactly the total. A non-positive installment count yields an empty
// schedule.
func GenerateInstallmentPayments(total decimal.Decimal, installments int, firstDueDate types.Date, vendorName string) []Payment {
	if installments <= 0 {
		return []Payment{}
	}

	base := total.Div(decimal.NewFromInt(int64(installments))).RoundDown(2)
	remaining := total

	payments := make([]Payment, 0, installments)
	for i := 0; i < installments; i++ {
		amount := base
		if i == installments-1 {
			amount = remaining
		}
		remaining = remaining.Sub(amount)

		payments = append(payments, Payment{
			ID:          newPaymentID(i + 1),
			Amount:      amount,
			DueDate:     firstDueDate.AddMonths(i),
			Description: fmt.Sprintf("Parcela %d/%d - %s", i+1, installments, vendorName),
		})
	}

	return payments
}

// PendingVendors returns all vendors not contracted yet.
func (a AppData) PendingVendors() []Vendor {
	vendors := make([]Vendor, 0)
	for _, vendor := range a.Vendors {
		if !vendor.IsContracted {
			vendors = append(vendors, vendor)
		}
	}

	return vendors
}

// ContractedVendors returns all contracted vendors.
func (a AppData) ContractedVendors() []Vendor {
	vendors := make([]Vendor, 0)
	for _, vendor := range a.Vendors {
		if vendor.IsContracted {
			vendors = append(vendors, vendor)
		}
	}

	return vendors
}

// VendorCategories returns the distinct categories of all vendors in the
// order they first appear.
func (a AppData) VendorCategories() []string {
	categories := make([]string, 0)
	for _, vendor := range a.Vendors {
		if !slices.Contains(categories, vendor.Category) {
			categories = append(categories, vendor.Category)
		}
	}

	return categories
}
