// Package ai generates the assistant copy of the application: thank you
// notes, guest messages, vendor questions, task suggestions and planning
// tips, all in Brazilian Portuguese.
package ai

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bellanote/backend/internal/types"
)

// ThankYouNoteRequest asks for a thank you note for a received gift.
type ThankYouNoteRequest struct {
	GiftName  string `json:"giftName" binding:"required"`
	GiverName string `json:"giverName"`
}

type ThankYouNoteResponse struct {
	Note string `json:"note"`
}

// GuestMessageRequest asks for a message to a guest for a given purpose,
// e.g. an RSVP reminder or a save-the-date.
type GuestMessageRequest struct {
	GuestName string `json:"guestName" binding:"required"`
	Context   string `json:"context" binding:"required"`
}

type GuestMessageResponse struct {
	Message string `json:"message"`
}

// VendorQuestionsRequest asks for questions to ask vendors of a category.
type VendorQuestionsRequest struct {
	VendorCategory string `json:"vendorCategory" binding:"required"`
}

type VendorQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// TaskSuggestion is one suggested planning task.
type TaskSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// TaskSuggestionsRequest asks for planning tasks fitting the current
// planning phase.
type TaskSuggestionsRequest struct {
	WeddingDate      types.Date `json:"weddingDate" binding:"required"`
	SelectedPackages []string   `json:"selectedPackages"`
	UserPrompt       string     `json:"userPrompt"`
}

type TaskSuggestionsResponse struct {
	Tasks []TaskSuggestion `json:"tasks"`
}

// CoupleVibeRequest asks for a short fun "couple vibe" line.
type CoupleVibeRequest struct {
	BrideName string `json:"brideName" binding:"required"`
	GroomName string `json:"groomName" binding:"required"`
}

type CoupleVibeResponse struct {
	Vibe string `json:"vibe"`
}

// WeddingTipRequest asks for a planning tip, optionally adapted to the
// time remaining until the wedding.
type WeddingTipRequest struct {
	WeddingDate types.Date `json:"weddingDate"`
}

type WeddingTipResponse struct {
	Tip string `json:"tip"`
}

// TransactionType distinguishes income from expenses in description
// requests.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionDescriptionRequest asks for a more detailed description for
// a financial transaction.
type TransactionDescriptionRequest struct {
	Amount             decimal.Decimal `json:"amount"`
	CategoryName       string          `json:"categoryName" binding:"required"`
	Type               TransactionType `json:"type" binding:"required"`
	CurrentDescription string          `json:"currentDescription"`
}

type TransactionDescriptionResponse struct {
	SuggestedDescription string `json:"suggestedDescription"`
}

// Generator produces the assistant copy. Implementations may fail or
// return empty payloads, the Assistant wrapper turns both into fixed
// fallbacks.
type Generator interface {
	ThankYouNote(ctx context.Context, request ThankYouNoteRequest) (ThankYouNoteResponse, error)
	GuestMessage(ctx context.Context, request GuestMessageRequest) (GuestMessageResponse, error)
	VendorQuestions(ctx context.Context, request VendorQuestionsRequest) (VendorQuestionsResponse, error)
	TaskSuggestions(ctx context.Context, request TaskSuggestionsRequest) (TaskSuggestionsResponse, error)
	CoupleVibe(ctx context.Context, request CoupleVibeRequest) (CoupleVibeResponse, error)
	WeddingTip(ctx context.Context, request WeddingTipRequest) (WeddingTipResponse, error)
	TransactionDescription(ctx context.Context, request TransactionDescriptionRequest) (TransactionDescriptionResponse, error)
}
