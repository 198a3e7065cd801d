package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrPersistence      = errors.New("the planning data could not be saved")

	ErrBudgetTotalNegative         = errors.New("the budget total must not be negative")
	ErrContractAmountNotPositive   = errors.New("the contract amount must be positive")
	ErrInstallmentCountNotPositive = errors.New("the number of installments must be positive")
	ErrWeddingDateRequired         = errors.New("a wedding date is required")
	ErrDocumentCorrupt             = errors.New("the stored planning document could not be read")
)
