package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
	ez_uuid "github.com/bellanote/backend/internal/uuid"
)

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`
	Error *string             `json:"error"`
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`
	Error *string              `json:"error"`
}

// TransactionEditable are the fields of a transaction that can be set
// from requests. The payment link is managed by the vendor contract
// endpoints and survives updates.
type TransactionEditable struct {
	Date        types.Date      `json:"date" example:"2027-05-20"`
	Amount      decimal.Decimal `json:"amount" example:"-1500.00"`
	Description string          `json:"description" binding:"required" example:"Sinal do buffet"`
	CategoryID  uuid.UUID       `json:"categoryId" example:"d1b9e056-9816-4b9d-85cd-b0c9d133f7cf"`
	IsPaid      bool            `json:"isPaid" example:"false"`
	VendorID    uuid.UUID       `json:"vendorId" example:"9b9cf3ed-a929-4d5c-9660-b6c218e9407c"`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
		IsPaid:      editable.IsPaid,
		VendorID:    editable.VendorID,
	}
}

// TransactionQueryFilter narrows down the transaction list.
type TransactionQueryFilter struct {
	Month       string       `form:"month"`       // YYYY-MM
	Description string       `form:"description"` // glob pattern
	CategoryID  ez_uuid.UUID `form:"category"`
	VendorID    ez_uuid.UUID `form:"vendor"`
	IsPaid      *bool        `form:"isPaid"`
}

// RegisterTransactionRoutes registers the routes for transactions.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetTransactions)
	r.POST("", co.CreateTransaction)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", co.GetTransaction)
	r.PATCH("/:id", co.UpdateTransaction)
	r.DELETE("/:id", co.DeleteTransaction)
}

// @Summary		List transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Param			month		query	string	false	"Only transactions in this month, formatted as YYYY-MM"
// @Param			description	query	string	false	"Filter by description, supports the * wildcard"
// @Param			category	query	string	false	"Filter by budget category ID"
// @Param			vendor		query	string	false	"Filter by vendor ID"
// @Param			isPaid		query	bool	false	"Filter by paid state"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	data := co.Store.Data()

	transactions := data.Transactions
	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
			return
		}

		transactions = data.TransactionsInMonth(month)
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.Description != "" && !glob.Glob(filter.Description, transaction.Description) {
			continue
		}
		if filter.CategoryID != ez_uuid.Nil && transaction.CategoryID != filter.CategoryID.UUID {
			continue
		}
		if filter.VendorID != ez_uuid.Nil && transaction.VendorID != filter.VendorID.UUID {
			continue
		}
		if filter.IsPaid != nil && transaction.IsPaid != *filter.IsPaid {
			continue
		}

		filtered = append(filtered, transaction)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: filtered})
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			transaction	body	TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	editable, err := httputil.BindData[TransactionEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction, err := co.Store.AddTransaction(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	for _, transaction := range data.Transactions {
		if transaction.ID == uri.ID.UUID {
			c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
			return
		}
	}

	err := errNotFound("transaction")
	s := err.Error()
	c.JSON(status(err), TransactionResponse{Error: &s})
}

// @Summary		Update transaction
// @Description	Replaces the transaction with the submitted data
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id			path	string				true	"ID formatted as string"
// @Param			transaction	body	TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[TransactionEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction := editable.model()
	transaction.ID = uri.ID.UUID

	// Keep the link to the vendor payment that generated the
	// transaction.
	data := co.Store.Data()
	for _, existing := range data.Transactions {
		if existing.ID == transaction.ID {
			transaction.PaymentID = existing.PaymentID
			break
		}
	}

	if err := co.Store.UpdateTransaction(transaction); err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteTransaction(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
