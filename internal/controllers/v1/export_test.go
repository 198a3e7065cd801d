package v1_test

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestExportGuests() {
	_ = suite.createTestGuest(models.Guest{Name: "Maria Silva", Group: "Família da Noiva", IsConfirmed: true})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/export/guests", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("text/csv; charset=utf-8", recorder.Header().Get("content-type"))
	suite.Assert().Equal(`attachment; filename="convidados.csv"`, recorder.Header().Get("content-disposition"))

	lines := strings.Split(recorder.Body.String(), "\r\n")
	suite.Require().Len(lines, 2)
	suite.Assert().Equal("id,name,group,contact,isConfirmed,note", lines[0])
	suite.Assert().Contains(lines[1], `"Maria Silva"`)
	suite.Assert().Contains(lines[1], "true")
}

func (suite *TestSuiteStandard) TestExportTransactions() {
	vendor := suite.createTestVendor(models.Vendor{Name: "Buffet Bella", Category: "Buffet"})
	_ = suite.contractTestVendor(vendor, v1.ContractEditable{
		Amount:       decimal.NewFromInt(900),
		PaymentType:  models.PaymentTypeSingle,
		FirstDueDate: types.NewDate(2026, 10, 5),
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/export/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal(`attachment; filename="transacoes.csv"`, recorder.Header().Get("content-disposition"))

	lines := strings.Split(recorder.Body.String(), "\r\n")
	suite.Require().Len(lines, 2)
	suite.Assert().Equal("id,date,description,category,vendor,amount,isPaid", lines[0])
	suite.Assert().Contains(lines[1], `"2026-10-05"`)
	suite.Assert().Contains(lines[1], `"Buffet Bella"`)
	suite.Assert().Contains(lines[1], `"-900"`)
}

func (suite *TestSuiteStandard) TestExportTransactionsWithoutReferences() {
	// Unset date, category and vendor render as empty cells
	_ = suite.createTestTransaction(models.Transaction{Description: "Presente em dinheiro", Amount: decimal.NewFromInt(500)})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/export/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	lines := strings.Split(recorder.Body.String(), "\r\n")
	suite.Require().Len(lines, 2)
	suite.Assert().Contains(lines[1], `"","Presente em dinheiro","",""`)
}

func (suite *TestSuiteStandard) TestExportGifts() {
	_ = suite.createTestGift(models.GiftItem{Name: "Jogo de panelas", Room: "Cozinha", Price: decimal.NewFromFloat(450)})
	_ = suite.createTestGift(models.GiftItem{Name: "Álbum de fotos"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/export/gifts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal(`attachment; filename="presentes.csv"`, recorder.Header().Get("content-disposition"))

	lines := strings.Split(recorder.Body.String(), "\r\n")
	suite.Require().Len(lines, 3)
	suite.Assert().Equal("id,name,room,price,isReceived,note", lines[0])
	suite.Assert().Contains(lines[1], `"450"`)

	// A gift without a price keeps the cell empty
	suite.Assert().Contains(lines[2], `"Álbum de fotos","",""`)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/export/guests", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}
