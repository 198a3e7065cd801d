package v1_test

import (
	"net/http"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/test"
)

// The test controller runs with an unconfigured generator, so every
// assistant endpoint serves its fixed fallback.

func (suite *TestSuiteStandard) TestAssistantThankYouNote() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/thank-you-note", `{ "giftName": "jogo de panelas", "giverName": "Ana" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ThankYouNoteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Contains(response.Data.Note, "Querido(a) Ana")
	suite.Assert().Contains(response.Data.Note, "jogo de panelas")
}

func (suite *TestSuiteStandard) TestAssistantThankYouNoteNoGift() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/thank-you-note", `{ "giverName": "Ana" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAssistantGuestMessage() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/guest-message", `{ "guestName": "Maria", "context": "lembrete de RSVP" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GuestMessageResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Data.Message, "Olá Maria!")
}

func (suite *TestSuiteStandard) TestAssistantVendorQuestions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/vendor-questions", `{ "vendorCategory": "Buffet" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.VendorQuestionsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Questions, 4)
}

func (suite *TestSuiteStandard) TestAssistantTaskSuggestions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/task-suggestions", `{ "weddingDate": "2027-05-20", "selectedPackages": ["buffet"] }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TaskSuggestionsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Tasks, 3)
}

func (suite *TestSuiteStandard) TestAssistantCoupleVibe() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/couple-vibe", `{ "brideName": "Gabriela", "groomName": "Henrique" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CoupleVibeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(response.Data.Vibe, "Gabriela e Henrique")
}

func (suite *TestSuiteStandard) TestAssistantWeddingTip() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/tip", `{}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.WeddingTipResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Data.Tip)
}

func (suite *TestSuiteStandard) TestAssistantTransactionDescription() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/assistant/transaction-description", `{ "type": "expense", "categoryName": "Buffet", "amount": -1500 }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionDescriptionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Despesa com Buffet", response.Data.SuggestedDescription)
}

func (suite *TestSuiteStandard) TestAssistantOptions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "/v1/assistant/tip", "")
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("POST", recorder.Header().Get("allow"))
}
