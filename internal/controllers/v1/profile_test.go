package v1_test

import (
	"net/http"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestGetProfile() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data.BrideName)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/profile", models.UserProfile{
		BrideName: "Gabriela",
		GroomName: "Henrique",
		UserEmail: "gabriela@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Gabriela", response.Data.BrideName)

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/profile", "")
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Henrique", response.Data.GroomName)
}

func (suite *TestSuiteStandard) TestGetWedding() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/wedding", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeddingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.WeddingDate.IsZero())
	suite.Assert().Zero(response.Data.MonthsUntilWedding)
}

func (suite *TestSuiteStandard) TestUpdateWedding() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/wedding", `{
		"weddingDate": "2033-05-20",
		"details": { "ceremonyLocation": "Igreja Matriz", "guestEstimate": 120 }
	}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeddingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Igreja Matriz", response.Data.Details.CeremonyLocation)
	suite.Assert().Equal(120, response.Data.Details.GuestEstimate)
	suite.Assert().Positive(response.Data.MonthsUntilWedding)
}

func (suite *TestSuiteStandard) TestUpdateWeddingDateOnly() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/wedding", `{ "details": { "ceremonyLocation": "Igreja Matriz" } }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// A missing wedding date stays unchanged
	recorder = test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/wedding", `{ "weddingDate": "2033-05-20" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeddingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Igreja Matriz", response.Data.Details.CeremonyLocation, "the details must survive a date-only update")
	suite.Assert().False(response.Data.WeddingDate.IsZero())
}
