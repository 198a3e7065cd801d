package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) createTestTransaction(transaction models.Transaction) models.Transaction {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/transactions", transaction)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) createTestVendor(vendor models.Vendor) models.Vendor {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/vendors", vendor)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.VendorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) contractTestVendor(vendor models.Vendor, contract v1.ContractEditable) models.Vendor {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, fmt.Sprintf("/v1/vendors/%s/contract", vendor.ID), contract)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.VendorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) createTestGuest(guest models.Guest) models.Guest {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/guests", guest)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GuestResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) createTestTask(task models.Task) models.Task {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/tasks", task)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TaskResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) createTestGift(gift models.GiftItem) models.GiftItem {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/gifts", gift)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GiftResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}
