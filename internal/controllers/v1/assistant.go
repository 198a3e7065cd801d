package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellanote/backend/internal/ai"
	"github.com/bellanote/backend/internal/httputil"
)

type ThankYouNoteResponse struct {
	Data  *ai.ThankYouNoteResponse `json:"data"`
	Error *string                  `json:"error"`
}

type GuestMessageResponse struct {
	Data  *ai.GuestMessageResponse `json:"data"`
	Error *string                  `json:"error"`
}

type VendorQuestionsResponse struct {
	Data  *ai.VendorQuestionsResponse `json:"data"`
	Error *string                     `json:"error"`
}

type TaskSuggestionsResponse struct {
	Data  *ai.TaskSuggestionsResponse `json:"data"`
	Error *string                     `json:"error"`
}

type CoupleVibeResponse struct {
	Data  *ai.CoupleVibeResponse `json:"data"`
	Error *string                `json:"error"`
}

type WeddingTipResponse struct {
	Data  *ai.WeddingTipResponse `json:"data"`
	Error *string                `json:"error"`
}

type TransactionDescriptionResponse struct {
	Data  *ai.TransactionDescriptionResponse `json:"data"`
	Error *string                            `json:"error"`
}

// RegisterAssistantRoutes registers the routes for the writing assistant.
func (co Controller) RegisterAssistantRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/thank-you-note", httputil.OptionsPost)
	r.POST("/thank-you-note", co.ThankYouNote)

	r.OPTIONS("/guest-message", httputil.OptionsPost)
	r.POST("/guest-message", co.GuestMessage)

	r.OPTIONS("/vendor-questions", httputil.OptionsPost)
	r.POST("/vendor-questions", co.VendorQuestions)

	r.OPTIONS("/task-suggestions", httputil.OptionsPost)
	r.POST("/task-suggestions", co.TaskSuggestions)

	r.OPTIONS("/couple-vibe", httputil.OptionsPost)
	r.POST("/couple-vibe", co.CoupleVibe)

	r.OPTIONS("/tip", httputil.OptionsPost)
	r.POST("/tip", co.WeddingTip)

	r.OPTIONS("/transaction-description", httputil.OptionsPost)
	r.POST("/transaction-description", co.TransactionDescription)
}

// @Summary		Thank you note
// @Description	Generates a thank you note for a received gift
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	ThankYouNoteResponse
// @Failure		400	{object}	ThankYouNoteResponse
// @Param			request	body	ai.ThankYouNoteRequest	true	"Request"
// @Router			/v1/assistant/thank-you-note [post]
func (co Controller) ThankYouNote(c *gin.Context) {
	request, err := httputil.BindData[ai.ThankYouNoteRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ThankYouNoteResponse{Error: &s})
		return
	}

	response := co.Assistant.ThankYouNote(c.Request.Context(), request)
	c.JSON(http.StatusOK, ThankYouNoteResponse{Data: &response})
}

// @Summary		Guest message
// @Description	Generates a message to a guest for a given purpose
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	GuestMessageResponse
// @Failure		400	{object}	GuestMessageResponse
// @Param			request	body	ai.GuestMessageRequest	true	"Request"
// @Router			/v1/assistant/guest-message [post]
func (co Controller) GuestMessage(c *gin.Context) {
	request, err := httputil.BindData[ai.GuestMessageRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GuestMessageResponse{Error: &s})
		return
	}

	response := co.Assistant.GuestMessage(c.Request.Context(), request)
	c.JSON(http.StatusOK, GuestMessageResponse{Data: &response})
}

// @Summary		Vendor questions
// @Description	Suggests questions to ask vendors of a category
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	VendorQuestionsResponse
// @Failure		400	{object}	VendorQuestionsResponse
// @Param			request	body	ai.VendorQuestionsRequest	true	"Request"
// @Router			/v1/assistant/vendor-questions [post]
func (co Controller) VendorQuestions(c *gin.Context) {
	request, err := httputil.BindData[ai.VendorQuestionsRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorQuestionsResponse{Error: &s})
		return
	}

	response := co.Assistant.VendorQuestions(c.Request.Context(), request)
	c.JSON(http.StatusOK, VendorQuestionsResponse{Data: &response})
}

// @Summary		Task suggestions
// @Description	Suggests planning tasks for the current planning phase
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	TaskSuggestionsResponse
// @Failure		400	{object}	TaskSuggestionsResponse
// @Param			request	body	ai.TaskSuggestionsRequest	true	"Request"
// @Router			/v1/assistant/task-suggestions [post]
func (co Controller) TaskSuggestions(c *gin.Context) {
	request, err := httputil.BindData[ai.TaskSuggestionsRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaskSuggestionsResponse{Error: &s})
		return
	}

	response := co.Assistant.TaskSuggestions(c.Request.Context(), request)
	c.JSON(http.StatusOK, TaskSuggestionsResponse{Data: &response})
}

// @Summary		Couple vibe
// @Description	Generates a short fun line about the couple
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	CoupleVibeResponse
// @Failure		400	{object}	CoupleVibeResponse
// @Param			request	body	ai.CoupleVibeRequest	true	"Request"
// @Router			/v1/assistant/couple-vibe [post]
func (co Controller) CoupleVibe(c *gin.Context) {
	request, err := httputil.BindData[ai.CoupleVibeRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CoupleVibeResponse{Error: &s})
		return
	}

	response := co.Assistant.CoupleVibe(c.Request.Context(), request)
	c.JSON(http.StatusOK, CoupleVibeResponse{Data: &response})
}

// @Summary		Wedding tip
// @Description	Generates a planning tip, adapted to the time remaining until the wedding
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	WeddingTipResponse
// @Failure		400	{object}	WeddingTipResponse
// @Param			request	body	ai.WeddingTipRequest	true	"Request"
// @Router			/v1/assistant/tip [post]
func (co Controller) WeddingTip(c *gin.Context) {
	request, err := httputil.BindData[ai.WeddingTipRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeddingTipResponse{Error: &s})
		return
	}

	response := co.Assistant.WeddingTip(c.Request.Context(), request)
	c.JSON(http.StatusOK, WeddingTipResponse{Data: &response})
}

// @Summary		Transaction description
// @Description	Suggests a more detailed description for a financial transaction
// @Tags			Assistant
// @Accept			json
// @Produce		json
// @Success		200	{object}	TransactionDescriptionResponse
// @Failure		400	{object}	TransactionDescriptionResponse
// @Param			request	body	ai.TransactionDescriptionRequest	true	"Request"
// @Router			/v1/assistant/transaction-description [post]
func (co Controller) TransactionDescription(c *gin.Context) {
	request, err := httputil.BindData[ai.TransactionDescriptionRequest](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionDescriptionResponse{Error: &s})
		return
	}

	response := co.Assistant.TransactionDescription(c.Request.Context(), request)
	c.JSON(http.StatusOK, TransactionDescriptionResponse{Data: &response})
}
