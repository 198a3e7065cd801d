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

func (suite *TestSuiteStandard) TestCreateVendor() {
	vendor := suite.createTestVendor(models.Vendor{
		Name:     "Buffet Bella",
		Category: "Buffet",
		Contact:  "(11) 98765-4321",
		Price:    decimal.NewFromInt(25000),
	})

	suite.Assert().NotEmpty(vendor.ID)
	suite.Assert().False(vendor.IsContracted)
	suite.Assert().Empty(vendor.Payments)
}

func (suite *TestSuiteStandard) TestCreateVendorNoName() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/vendors", `{ "category": "Buffet" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetVendors() {
	_ = suite.createTestVendor(models.Vendor{Name: "Buffet Bella", Category: "Buffet"})
	vendor := suite.createTestVendor(models.Vendor{Name: "Espaço Jardim", Category: "Espaço"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:      decimal.NewFromInt(20000),
		PaymentType: models.PaymentTypeSingle,
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?name=Buffet*", 1},
		{"?category=Espaço", 1},
		{"?isContracted=true", 1},
		{"?isContracted=false", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/vendors"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.VendorListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateVendorKeepsContractState() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella", Category: "Buffet"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:       decimal.NewFromInt(900),
		PaymentType:  models.PaymentTypeInstallment,
		Installments: 3,
		FirstDueDate: types.NewDate(2026, 10, 5),
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/vendors/%s", vendor.ID), map[string]any{
		"name":    "Buffet Bella Eventos",
		"contact": "contato@buffetbella.com.br",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.VendorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Buffet Bella Eventos", response.Data.Name)
	suite.Assert().True(response.Data.IsContracted)
	suite.Assert().True(response.Data.TotalContractAmount.Equal(decimal.NewFromInt(900)))
	suite.Assert().Len(response.Data.Payments, 3)
}

func (suite *TestSuiteStandard) TestContractVendorInstallments() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella", Category: "Buffet"})

	contracted := suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:       decimal.NewFromInt(1000),
		PaymentType:  models.PaymentTypeInstallment,
		Installments: 3,
		FirstDueDate: types.NewDate(2026, 10, 5),
	})

	suite.Assert().True(contracted.IsContracted)
	suite.Require().Len(contracted.Payments, 3)
	suite.Assert().True(contracted.Payments[0].Amount.Equal(decimal.NewFromFloat(333.33)))
	suite.Assert().True(contracted.Payments[2].Amount.Equal(decimal.NewFromFloat(333.34)))

	// The planned expenses are created along with the schedule
	var transactions v1.TransactionListResponse
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions", "")
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Len(transactions.Data, 3)
}

func (suite *TestSuiteStandard) TestContractVendorInvalidPaymentType() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, fmt.Sprintf("/v1/vendors/%s/contract", vendor.ID), `{ "amount": 900, "paymentType": "barter" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractVendorInvalidAmount() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, fmt.Sprintf("/v1/vendors/%s/contract", vendor.ID), `{ "amount": 0, "paymentType": "single" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractVendorNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/vendors/3e816712-9b6a-4d92-a583-e465b29bd98c/contract", `{ "amount": 900, "paymentType": "single" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCancelContract() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:      decimal.NewFromInt(900),
		PaymentType: models.PaymentTypeSingle,
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/vendors/%s/contract", vendor.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.VendorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().False(response.Data.IsContracted)
	suite.Assert().Len(response.Data.Payments, 1, "the payment history must survive the cancellation")
}

func (suite *TestSuiteStandard) TestSetPaymentPaid() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})
	contracted := suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:       decimal.NewFromInt(900),
		PaymentType:  models.PaymentTypeInstallment,
		Installments: 3,
		FirstDueDate: types.NewDate(2026, 10, 5),
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch,
		fmt.Sprintf("/v1/vendors/%s/payments/%s", vendor.ID, contracted.Payments[0].ID),
		v1.PaymentStatusEditable{IsPaid: true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.VendorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Payments[0].IsPaid)
	suite.Assert().True(response.Data.PaidAmount.Equal(decimal.NewFromInt(300)))

	// The planned expense is marked as paid, too
	var transactions v1.TransactionListResponse
	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions?isPaid=true", "")
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Require().Len(transactions.Data, 1)
	suite.Assert().Equal(contracted.Payments[0].ID, transactions.Data[0].PaymentID)
}

func (suite *TestSuiteStandard) TestSetPaymentPaidNotFound() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch,
		fmt.Sprintf("/v1/vendors/%s/payments/payment-9-00000000", vendor.ID),
		v1.PaymentStatusEditable{IsPaid: true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteVendor() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:      decimal.NewFromInt(900),
		PaymentType: models.PaymentTypeSingle,
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/vendors/%s", vendor.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The planned expenses are deleted with the vendor
	var transactions v1.TransactionListResponse
	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/transactions", "")
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Empty(transactions.Data)
}

func (suite *TestSuiteStandard) TestVendorNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/vendors/3e816712-9b6a-4d92-a583-e465b29bd98c", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.controller, suite.T(), http.MethodDelete, "/v1/vendors/3e816712-9b6a-4d92-a583-e465b29bd98c", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsVendorContract() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/vendors/3e816712-9b6a-4d92-a583-e465b29bd98c/contract", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("POST, DELETE", recorder.Header().Get("allow"))
}
