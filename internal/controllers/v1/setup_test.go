package v1_test

import (
	"net/http"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestGetPackages() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/setup", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PackageListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(models.InitialPackages, response.Data)
}

func (suite *TestSuiteStandard) TestCreateSetup() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/setup", `{
		"userProfile": { "brideName": "Gabriela", "groomName": "Henrique" },
		"weddingDate": "2027-05-20",
		"weddingDetails": { "ceremonyLocation": "Igreja Matriz" },
		"budgetTotal": 80000,
		"selectedPackages": ["buffet", "fotografia", "outros"],
		"otherPackageName": "Lembrancinhas"
	}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AppDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Gabriela", response.Data.UserProfile.BrideName)
	suite.Assert().Equal("Igreja Matriz", response.Data.WeddingDetails.CeremonyLocation)
	suite.Require().Len(response.Data.Budget.Categories, 3)
	suite.Assert().Equal("Lembrancinhas", response.Data.Budget.Categories[2].Name)
	suite.Assert().Equal([]string{"buffet", "fotografia", "outros"}, response.Data.SelectedPackages)
}

func (suite *TestSuiteStandard) TestCreateSetupNoWeddingDate() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/setup", `{ "budgetTotal": 80000 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateSetupNegativeBudget() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/setup", `{ "weddingDate": "2027-05-20", "budgetTotal": -1 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
