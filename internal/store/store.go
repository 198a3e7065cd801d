// Package store owns the planning document. It keeps the current document
// in memory and serializes every change: a change works on a copy of the
// document, the copy is persisted and only then published. A failed save
// leaves the in-memory document untouched.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
)

// A Subscriber is called with a copy of the document after every
// successful change.
type Subscriber func(models.AppData)

// Store manages the planning document of this installation.
type Store struct {
	mu          sync.Mutex
	data        models.AppData
	subscribers []Subscriber
}

// Open loads the planning document and returns a store for it. A missing
// document is initialized with defaults.
func Open() (*Store, error) {
	data, err := models.LoadAppData()
	if err != nil {
		return nil, err
	}

	return &Store{data: data}, nil
}

// Data returns a copy of the current document.
func (s *Store) Data() models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Clone()
}

// Subscribe registers a subscriber. Subscribers are called synchronously,
// in registration order, after every successful change.
func (s *Store) Subscribe(subscriber Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, subscriber)
}

// update applies a change to a copy of the document, persists the copy
// and publishes it. When the change or the save fails, the in-memory
// document stays as it was.
func (s *Store) update(change func(*models.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := change(&next); err != nil {
		return err
	}

	if err := models.SaveAppData(next); err != nil {
		return err
	}

	s.data = next
	for _, subscriber := range s.subscribers {
		subscriber(next.Clone())
	}

	return nil
}

// SetWeddingDate sets the wedding date.
func (s *Store) SetWeddingDate(date types.Date) error {
	return s.update(func(data *models.AppData) error {
		data.WeddingDate = date
		return nil
	})
}

// UpdateBudgetTotal sets the budget total.
func (s *Store) UpdateBudgetTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return models.ErrBudgetTotalNegative
	}

	return s.update(func(data *models.AppData) error {
		data.Budget.Total = total
		return nil
	})
}

// UpdateBudgetCategories replaces the budget categories. Allocations are
// normalized so that they sum up to 1.
func (s *Store) UpdateBudgetCategories(categories []models.BudgetCategory) error {
	return s.update(func(data *models.AppData) error {
		data.Budget.Categories = models.NormalizeAllocations(categories)
		return nil
	})
}

// AddTransaction adds a transaction and returns it with its new ID.
func (s *Store) AddTransaction(transaction models.Transaction) (models.Transaction, error) {
	transaction.ID = uuid.New()

	err := s.update(func(data *models.AppData) error {
		data.Transactions = append(data.Transactions, transaction)
		return nil
	})

	return transaction, err
}

// UpdateTransaction replaces the transaction with the same ID.
func (s *Store) UpdateTransaction(transaction models.Transaction) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Transactions {
			if data.Transactions[i].ID == transaction.ID {
				data.Transactions[i] = transaction
				return nil
			}
		}

		return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	})
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(id uuid.UUID) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Transactions {
			if data.Transactions[i].ID == id {
				data.Transactions = append(data.Transactions[:i], data.Transactions[i+1:]...)
				return nil
			}
		}

		return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	})
}

// AddVendor adds a vendor as an uncontracted candidate and returns it
// with its new ID. Contract fields on the input are ignored.
func (s *Store) AddVendor(vendor models.Vendor) (models.Vendor, error) {
	vendor.ID = uuid.New()
	vendor.IsContracted = false
	vendor.TotalContractAmount = decimal.Zero
	vendor.PaymentType = models.PaymentTypeSingle
	vendor.PaidAmount = decimal.Zero
	vendor.Payments = []models.Payment{}
	if vendor.Attachments == nil {
		vendor.Attachments = []models.VendorAttachment{}
	}

	err := s.update(func(data *models.AppData) error {
		data.Vendors = append(data.Vendors, vendor)
		return nil
	})

	return vendor, err
}

// UpdateVendor replaces the vendor with the same ID.
func (s *Store) UpdateVendor(vendor models.Vendor) error {
	if vendor.Payments == nil {
		vendor.Payments = []models.Payment{}
	}
	if vendor.Attachments == nil {
		vendor.Attachments = []models.VendorAttachment{}
	}

	return s.update(func(data *models.AppData) error {
		for i := range data.Vendors {
			if data.Vendors[i].ID == vendor.ID {
				data.Vendors[i] = vendor
				return nil
			}
		}

		return fmt.Errorf("%w vendor matching your query", models.ErrResourceNotFound)
	})
}

// DeleteVendor removes a vendor together with all transactions that
// reference it.
func (s *Store) DeleteVendor(id uuid.UUID) error {
	return s.update(func(data *models.AppData) error {
		idx := vendorIndex(data, id)
		if idx < 0 {
			return fmt.Errorf("%w vendor matching your query", models.ErrResourceNotFound)
		}

		data.Vendors = append(data.Vendors[:idx], data.Vendors[idx+1:]...)

		transactions := make([]models.Transaction, 0, len(data.Transactions))
		for _, transaction := range data.Transactions {
			if transaction.VendorID != id {
				transactions = append(transactions, transaction)
			}
		}
		data.Transactions = transactions

		return nil
	})
}

// ContractVendor marks a vendor as contracted, generates its payment
// schedule and replaces the vendor's planned transactions with one
// expense per payment.
//
// With PaymentTypeSingle the schedule is one payment, due at the first
// due date if given, otherwise at the wedding date, otherwise today. With
// PaymentTypeInstallment the amount is split into monthly installments
// starting at the first due date; without a first due date the schedule
// stays empty.
func (s *Store) ContractVendor(id uuid.UUID, amount decimal.Decimal, paymentType models.PaymentType, installments int, firstDueDate types.Date) (models.Vendor, error) {
	if !amount.IsPositive() {
		return models.Vendor{}, models.ErrContractAmountNotPositive
	}

	if paymentType == models.PaymentTypeInstallment && installments <= 0 {
		return models.Vendor{}, models.ErrInstallmentCountNotPositive
	}

	var contracted models.Vendor
	err := s.update(func(data *models.AppData) error {
		idx := vendorIndex(data, id)
		if idx < 0 {
			return fmt.Errorf("%w vendor matching your query", models.ErrResourceNotFound)
		}

		vendor := data.Vendors[idx]

		payments := []models.Payment{}
		if paymentType == models.PaymentTypeSingle {
			dueDate := firstDueDate
			if dueDate.IsZero() {
				dueDate = data.WeddingDate
			}
			if dueDate.IsZero() {
				dueDate = types.DateOf(time.Now())
			}

			payments = append(payments, models.NewSinglePayment(amount, dueDate, vendor.Name))
		} else if !firstDueDate.IsZero() {
			payments = models.GenerateInstallmentPayments(amount, installments, firstDueDate, vendor.Name)
		}

		vendor.IsContracted = true
		vendor.TotalContractAmount = amount
		vendor.PaymentType = paymentType
		vendor.Payments = payments
		vendor.PaidAmount = vendor.CalculatePaidAmount()
		data.Vendors[idx] = vendor

		transactions := make([]models.Transaction, 0, len(data.Transactions)+len(payments))
		for _, transaction := range data.Transactions {
			if transaction.VendorID != id {
				transactions = append(transactions, transaction)
			}
		}

		category, _ := data.CategoryByName(vendor.Category)
		for _, payment := range payments {
			transactions = append(transactions, models.Transaction{
				ID:          uuid.New(),
				Date:        payment.DueDate,
				Amount:      payment.Amount.Neg(),
				Description: payment.Description,
				CategoryID:  category.ID,
				VendorID:    vendor.ID,
				PaymentID:   payment.ID,
			})
		}
		data.Transactions = transactions

		contracted = vendor
		return nil
	})

	return contracted, err
}

// CancelContract reverts a vendor to an uncontracted candidate. The
// payment schedule and the planned transactions are kept so that the
// payment history stays inspectable.
func (s *Store) CancelContract(id uuid.UUID) (models.Vendor, error) {
	var vendor models.Vendor
	err := s.update(func(data *models.AppData) error {
		idx := vendorIndex(data, id)
		if idx < 0 {
			return fmt.Errorf("%w vendor matching your query", models.ErrResourceNotFound)
		}

		data.Vendors[idx].IsContracted = false
		vendor = data.Vendors[idx]
		return nil
	})

	return vendor, err
}

// SetPaymentPaid sets the paid flag of one payment of a vendor and syncs
// the vendor's paid amount and the matching planned transaction.
//
// Transactions generated by ContractVendor carry the payment's ID and are
// matched by it. Transactions from documents written before that field
// existed are matched by description, amount and due date instead.
func (s *Store) SetPaymentPaid(vendorID uuid.UUID, paymentID string, isPaid bool) (models.Vendor, error) {
	var updated models.Vendor
	err := s.update(func(data *models.AppData) error {
		idx := vendorIndex(data, vendorID)
		if idx < 0 {
			return fmt.Errorf("%w vendor matching your query", models.ErrResourceNotFound)
		}

		vendor := data.Vendors[idx]

		var payment models.Payment
		paymentIdx := -1
		for i := range vendor.Payments {
			if vendor.Payments[i].ID == paymentID {
				paymentIdx = i
				break
			}
		}
		if paymentIdx < 0 {
			return fmt.Errorf("%w payment matching your query", models.ErrResourceNotFound)
		}

		vendor.Payments[paymentIdx].IsPaid = isPaid
		payment = vendor.Payments[paymentIdx]
		vendor.PaidAmount = vendor.CalculatePaidAmount()
		data.Vendors[idx] = vendor

		matched := false
		for i := range data.Transactions {
			if data.Transactions[i].VendorID == vendorID && data.Transactions[i].PaymentID == paymentID {
				data.Transactions[i].IsPaid = isPaid
				matched = true
			}
		}

		if !matched {
			for i := range data.Transactions {
				transaction := data.Transactions[i]
				if transaction.VendorID == vendorID &&
					transaction.Description == payment.Description &&
					transaction.Amount.Abs().Equal(payment.Amount) &&
					transaction.Date.Equal(payment.DueDate) {
					data.Transactions[i].IsPaid = isPaid
				}
			}
		}

		updated = vendor
		return nil
	})

	return updated, err
}

// AddGuest adds a guest and returns it with its new ID.
func (s *Store) AddGuest(guest models.Guest) (models.Guest, error) {
	guest.ID = uuid.New()

	err := s.update(func(data *models.AppData) error {
		data.Guests = append(data.Guests, guest)
		return nil
	})

	return guest, err
}

// UpdateGuest replaces the guest with the same ID.
func (s *Store) UpdateGuest(guest models.Guest) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Guests {
			if data.Guests[i].ID == guest.ID {
				data.Guests[i] = guest
				return nil
			}
		}

		return fmt.Errorf("%w guest matching your query", models.ErrResourceNotFound)
	})
}

// DeleteGuest removes a guest.
func (s *Store) DeleteGuest(id uuid.UUID) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Guests {
			if data.Guests[i].ID == id {
				data.Guests = append(data.Guests[:i], data.Guests[i+1:]...)
				return nil
			}
		}

		return fmt.Errorf("%w guest matching your query", models.ErrResourceNotFound)
	})
}

// UpdateGuestGroups replaces the guest groups.
func (s *Store) UpdateGuestGroups(groups []string) error {
	return s.update(func(data *models.AppData) error {
		data.GuestGroups = groups
		return nil
	})
}

// AddTask adds a task and returns it with its new ID.
func (s *Store) AddTask(task models.Task) (models.Task, error) {
	task.ID = uuid.New()

	err := s.update(func(data *models.AppData) error {
		data.Tasks = append(data.Tasks, task)
		return nil
	})

	return task, err
}

// UpdateTask replaces the task with the same ID.
func (s *Store) UpdateTask(task models.Task) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Tasks {
			if data.Tasks[i].ID == task.ID {
				data.Tasks[i] = task
				return nil
			}
		}

		return fmt.Errorf("%w task matching your query", models.ErrResourceNotFound)
	})
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id uuid.UUID) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Tasks {
			if data.Tasks[i].ID == id {
				data.Tasks = append(data.Tasks[:i], data.Tasks[i+1:]...)
				return nil
			}
		}

		return fmt.Errorf("%w task matching your query", models.ErrResourceNotFound)
	})
}

// AddGift adds a gift and returns it with its new ID.
func (s *Store) AddGift(gift models.GiftItem) (models.GiftItem, error) {
	gift.ID = uuid.New()

	err := s.update(func(data *models.AppData) error {
		data.Gifts = append(data.Gifts, gift)
		return nil
	})

	return gift, err
}

// UpdateGift replaces the gift with the same ID.
func (s *Store) UpdateGift(gift models.GiftItem) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Gifts {
			if data.Gifts[i].ID == gift.ID {
				data.Gifts[i] = gift
				return nil
			}
		}

		return fmt.Errorf("%w gift matching your query", models.ErrResourceNotFound)
	})
}

// DeleteGift removes a gift.
func (s *Store) DeleteGift(id uuid.UUID) error {
	return s.update(func(data *models.AppData) error {
		for i := range data.Gifts {
			if data.Gifts[i].ID == id {
				data.Gifts = append(data.Gifts[:i], data.Gifts[i+1:]...)
				return nil
			}
		}

		return fmt.Errorf("%w gift matching your query", models.ErrResourceNotFound)
	})
}

// UpdateUserProfile replaces the user profile.
func (s *Store) UpdateUserProfile(profile models.UserProfile) error {
	return s.update(func(data *models.AppData) error {
		data.UserProfile = profile
		return nil
	})
}

// UpdateWeddingDetails replaces the ceremony and reception details.
func (s *Store) UpdateWeddingDetails(details models.WeddingDetails) error {
	return s.update(func(data *models.AppData) error {
		data.WeddingDetails = details
		return nil
	})
}

// SetupDetails is everything collected during the initial setup.
type SetupDetails struct {
	UserProfile      models.UserProfile
	WeddingDate      types.Date
	WeddingDetails   models.WeddingDetails
	BudgetTotal      decimal.Decimal
	SelectedPackages []string
	OtherPackageName string
}

// SaveInitialSetup stores the data collected during initial setup and
// derives the budget categories from the selected packages.
func (s *Store) SaveInitialSetup(setup SetupDetails) error {
	if setup.WeddingDate.IsZero() {
		return models.ErrWeddingDateRequired
	}

	if setup.BudgetTotal.IsNegative() {
		return models.ErrBudgetTotalNegative
	}

	return s.update(func(data *models.AppData) error {
		data.UserProfile = setup.UserProfile
		data.WeddingDate = setup.WeddingDate
		data.WeddingDetails = setup.WeddingDetails
		data.Budget = models.Budget{
			Total:      setup.BudgetTotal,
			Categories: models.SetupCategories(setup.SelectedPackages, setup.OtherPackageName),
		}
		data.SelectedPackages = append([]string{}, setup.SelectedPackages...)

		return nil
	})
}

// Reset destroys the stored document and reinitializes the store with
// defaults.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := models.DeleteAppData(); err != nil {
		return err
	}

	data := models.DefaultAppData()
	if err := models.SaveAppData(data); err != nil {
		return err
	}

	s.data = data
	for _, subscriber := range s.subscribers {
		subscriber(data.Clone())
	}

	return nil
}

func vendorIndex(data *models.AppData, id uuid.UUID) int {
	for i := range data.Vendors {
		if data.Vendors[i].ID == id {
			return i
		}
	}

	return -1
}
