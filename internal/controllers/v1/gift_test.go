package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/test"
)

func (suite *TestSuiteStandard) TestCreateGift() {
	gift := suite.createTestGift(models.GiftItem{
		Name:  "Jogo de panelas",
		Room:  "Cozinha",
		Price: decimal.NewFromFloat(450.00),
		Note:  "Preferência pela cor preta",
	})

	suite.Assert().NotEmpty(gift.ID)
	suite.Assert().Equal("Jogo de panelas", gift.Name)
	suite.Assert().False(gift.IsReceived)
}

func (suite *TestSuiteStandard) TestCreateGiftNoName() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "/v1/gifts", `{ "room": "Cozinha" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetGifts() {
	_ = suite.createTestGift(models.GiftItem{Name: "Jogo de panelas", Room: "Cozinha", IsReceived: true})
	_ = suite.createTestGift(models.GiftItem{Name: "Jogo de toalhas", Room: "Banheiro"})

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?name=Jogo*", 2},
		{"?name=*panelas", 1},
		{"?room=Cozinha", 1},
		{"?isReceived=true", 1},
		{"?isReceived=false", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "/v1/gifts"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.GiftListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateGift() {
	gift := suite.createTestGift(models.GiftItem{Name: "Jogo de panelas", Room: "Cozinha"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/gifts/%s", gift.ID), map[string]any{
		"name":       "Jogo de panelas",
		"room":       "Cozinha",
		"isReceived": true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GiftResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.IsReceived)
}

func (suite *TestSuiteStandard) TestDeleteGift() {
	gift := suite.createTestGift(models.GiftItem{Name: "Jogo de panelas"})

	recorder := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/gifts/%s", gift.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/gifts/%s", gift.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
