package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalBudget.IsZero())
	suite.Assert().Zero(response.Data.TotalGuests)
	suite.Assert().Empty(response.Data.UpcomingPayments)
}

func (suite *TestSuiteStandard) TestGetDashboard() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/budget", v1.BudgetTotalEditable{Total: decimal.NewFromInt(10000)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	_ = suite.createTestTransaction(models.Transaction{Description: "Sinal do buffet", Amount: decimal.NewFromInt(-2000), Date: types.NewDate(2026, 9, 15), IsPaid: true})
	_ = suite.createTestTransaction(models.Transaction{Description: "Parcela da decoração", Amount: decimal.NewFromInt(-500), Date: types.NewDate(2026, 10, 1)})
	_ = suite.createTestGuest(models.Guest{Name: "Maria Silva", IsConfirmed: true})
	_ = suite.createTestGuest(models.Guest{Name: "João Santos"})
	_ = suite.createTestTask(models.Task{Title: "Escolher o buffet"})
	_ = suite.createTestGift(models.GiftItem{Name: "Jogo de panelas", IsReceived: true})
	_ = suite.createTestVendor(models.Vendor{Name: "Espaço Jardim"})

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalBudget.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(response.Data.TotalSpent.Equal(decimal.NewFromInt(2500)))
	suite.Assert().True(response.Data.TotalPaid.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data.RemainingBudget.Equal(decimal.NewFromInt(7500)))
	suite.Assert().InDelta(25.0, response.Data.SpentPercentage, 0.0001)
	suite.Assert().Equal(2, response.Data.TotalGuests)
	suite.Assert().Equal(1, response.Data.ConfirmedGuests)
	suite.Assert().Equal(1, response.Data.OpenTasks)
	suite.Assert().Equal(1, response.Data.ReceivedGifts)
	suite.Assert().InDelta(100.0, response.Data.ReceivedGiftsPercentage, 0.0001)
	suite.Assert().Equal(1, response.Data.PendingVendors)
	suite.Assert().Zero(response.Data.ContractedVendors)

	// The one unpaid expense shows up as upcoming
	suite.Require().Len(response.Data.UpcomingPayments, 1)
	suite.Assert().Equal("Parcela da decoração", response.Data.UpcomingPayments[0].Description)
}
