package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/bellanote/backend/internal/types"
)

// Transaction is a single movement of money. Negative amounts are
// expenses, positive amounts are income.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        types.Date      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	IsPaid      bool            `json:"isPaid"`
	VendorID    uuid.UUID       `json:"vendorId"`
	PaymentID   string          `json:"paymentId,omitempty"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// TotalSpent returns the sum of all expenses, as a positive amount.
func (a AppData) TotalSpent() decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range a.Transactions {
		if transaction.IsExpense() {
			sum = sum.Add(transaction.Amount.Abs())
		}
	}

	return sum
}

// TotalPaid returns the sum of all expenses already paid, as a positive
// amount.
func (a AppData) TotalPaid() decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range a.Transactions {
		if transaction.IsExpense() && transaction.IsPaid {
			sum = sum.Add(transaction.Amount.Abs())
		}
	}

	return sum
}

// ActualBalance returns the signed sum over all transactions.
func (a AppData) ActualBalance() decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range a.Transactions {
		sum = sum.Add(transaction.Amount)
	}

	return sum
}

// TransactionsInMonth returns all transactions dated within the month.
func (a AppData) TransactionsInMonth(month types.Month) []Transaction {
	transactions := make([]Transaction, 0)
	for _, transaction := range a.Transactions {
		if transaction.Date.In(month) {
			transactions = append(transactions, transaction)
		}
	}

	return transactions
}

// UpcomingPayments returns the unpaid expenses with the earliest dates,
// at most limit of them.
func (a AppData) UpcomingPayments(limit int) []Transaction {
	upcoming := make([]Transaction, 0)
	for _, transaction := range a.Transactions {
		if transaction.IsExpense() && !transaction.IsPaid {
			upcoming = append(upcoming, transaction)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b Transaction) int {
		return time.Time(a.Date).Compare(time.Time(b.Date))
	})

	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return upcoming
}

// ThisWeekPayments returns the unpaid expenses due in the week of the
// reference time. Weeks start on Monday.
func (a AppData) ThisWeekPayments(now time.Time) []Transaction {
	start, end := weekOf(now)

	payments := make([]Transaction, 0)
	for _, transaction := range a.Transactions {
		if !transaction.IsExpense() || transaction.IsPaid {
			continue
		}

		date := transaction.Date.Time()
		if !date.Before(start) && date.Before(end) {
			payments = append(payments, transaction)
		}
	}

	return payments
}

// weekOf returns the half-open interval [start, end) of the week the
// reference time falls into. Weeks start on Monday.
func weekOf(now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	return start, start.AddDate(0, 0, 7)
}
