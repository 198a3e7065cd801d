package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestGetBudget() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Total.IsZero())
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestUpdateBudgetTotal() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/budget", v1.BudgetTotalEditable{Total: decimal.NewFromInt(50000)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(50000)))
}

func (suite *TestSuiteStandard) TestUpdateBudgetTotalNegative() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/budget", `{ "total": -1 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudgetInvalidBody() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/budget", `{ "total": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudgetCategories() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/budget/categories", []v1.BudgetCategoryEditable{
		{Name: "Buffet", Allocation: decimal.NewFromInt(3)},
		{Name: "Decoração", Allocation: decimal.NewFromInt(1)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetCategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)

	// Every category gets an ID and the allocations are normalized
	for _, category := range response.Data {
		suite.Assert().NotEmpty(category.ID)
	}
	suite.Assert().True(response.Data[0].Allocation.Equal(decimal.NewFromFloat(0.75)), "allocation is %s", response.Data[0].Allocation)
	suite.Assert().True(response.Data[1].Allocation.Equal(decimal.NewFromFloat(0.25)), "allocation is %s", response.Data[1].Allocation)
}

func (suite *TestSuiteStandard) TestGetBudgetCategories() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPut, "/v1/budget/categories", []v1.BudgetCategoryEditable{
		{Name: "Buffet", Allocation: decimal.NewFromInt(1)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/budget/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetCategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Buffet", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestBudgetDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/budget", v1.BudgetTotalEditable{Total: decimal.NewFromInt(100)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
