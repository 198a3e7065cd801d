package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "Sinal do buffet",
		Amount:      decimal.NewFromInt(-2000),
		Date:        types.NewDate(2026, 9, 15),
	})

	suite.Assert().NotEmpty(transaction.ID)
	suite.Assert().Equal("Sinal do buffet", transaction.Description)
}

func (suite *TestSuiteStandard) TestCreateTransactionNoDescription() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/transactions", `{ "amount": -100 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateTransactionEmptyBody() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	_ = suite.createTestTransaction(models.Transaction{Description: "Sinal do buffet", Amount: decimal.NewFromInt(-2000), Date: types.NewDate(2026, 9, 15), IsPaid: true})
	_ = suite.createTestTransaction(models.Transaction{Description: "Parcela da decoração", Amount: decimal.NewFromInt(-500), Date: types.NewDate(2026, 10, 1)})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?month=2026-09", 1},
		{"?month=2026-11", 0},
		{"?description=Sinal*", 1},
		{"?description=*decoração", 1},
		{"?isPaid=true", 1},
		{"?isPaid=false", 1},
		{"?month=2026-09&isPaid=false", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsFilterByVendor() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:       decimal.NewFromInt(900),
		PaymentType:  models.PaymentTypeInstallment,
		Installments: 3,
		FirstDueDate: types.NewDate(2026, 10, 5),
	})
	_ = suite.createTestTransaction(models.Transaction{Description: "Presente", Amount: decimal.NewFromInt(500)})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?vendor=%s", vendor.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidQuery() {
	tests := []string{
		"?month=não-um-mês",
		"?isPaid=talvez",
		"?vendor=not-a-uuid",
	}

	for _, tt := range tests {
		suite.Run(tt, func() {
			recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions"+tt, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Sinal do buffet", Amount: decimal.NewFromInt(-2000)})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions/3e816712-9b6a-4d92-a583-e465b29bd98c", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTransactionInvalidID() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Sinal do buffet", Amount: decimal.NewFromInt(-2000)})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "Sinal do buffet ajustado",
		"amount":      -2500,
		"isPaid":      true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Sinal do buffet ajustado", response.Data.Description)
	suite.Assert().True(response.Data.IsPaid)
}

func (suite *TestSuiteStandard) TestUpdateTransactionKeepsPaymentLink() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:       decimal.NewFromInt(900),
		PaymentType:  models.PaymentTypeInstallment,
		Installments: 3,
		FirstDueDate: types.NewDate(2026, 10, 5),
	})

	var list v1.TransactionListResponse
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions", "")
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().NotEmpty(list.Data)

	generated := list.Data[0]
	suite.Require().NotEmpty(generated.PaymentID)

	recorder = test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", generated.ID), map[string]any{
		"description": "Parcela renegociada",
		"amount":      -250,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(generated.PaymentID, response.Data.PaymentID)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/transactions/3e816712-9b6a-4d92-a583-e465b29bd98c", `{ "description": "Nada" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Sinal do buffet", Amount: decimal.NewFromInt(-2000)})

	recorder := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/transactions", `{ "description": "Sinal" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestOptionsTransaction() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/transactions", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/transactions/3e816712-9b6a-4d92-a583-e465b29bd98c", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
