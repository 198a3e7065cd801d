package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Assistant wraps a Generator and guarantees a displayable result for
// every call: when the generator fails or returns an empty payload, a
// fixed fallback is returned instead of an error.
type Assistant struct {
	generator Generator
}

// NewAssistant returns an assistant on top of the given generator.
func NewAssistant(generator Generator) *Assistant {
	return &Assistant{generator: generator}
}

func fallback(op string, err error) {
	if err != nil {
		log.Warn().Err(err).Str("operation", op).Msg("assistant generation failed, using fallback")
	}
}

func (a *Assistant) ThankYouNote(ctx context.Context, request ThankYouNoteRequest) ThankYouNoteResponse {
	response, err := a.generator.ThankYouNote(ctx, request)
	if err == nil && strings.TrimSpace(response.Note) != "" {
		return response
	}
	fallback("thank-you-note", err)

	if request.GiverName != "" {
		return ThankYouNoteResponse{
			Note: fmt.Sprintf("Querido(a) %s,\n\nMuito obrigado(a) pelo(a) %s! Ficamos muito felizes com o presente e com o seu carinho.\n\nCom carinho,\n[Nomes dos Noivos]", request.GiverName, request.GiftName),
		}
	}

	return ThankYouNoteResponse{
		Note: fmt.Sprintf("Queridos amigos e familiares,\n\nGostaríamos de agradecer imensamente pelo(a) %s! Ficamos muito felizes com o presente e com a generosidade de vocês.\n\nAbraços,\n[Nomes dos Noivos]", request.GiftName),
	}
}

func (a *Assistant) GuestMessage(ctx context.Context, request GuestMessageRequest) GuestMessageResponse {
	response, err := a.generator.GuestMessage(ctx, request)
	if err == nil && strings.TrimSpace(response.Message) != "" {
		return response
	}
	fallback("guest-message", err)

	return GuestMessageResponse{
		Message: fmt.Sprintf("Olá %s! Temos novidades sobre o nosso casamento e adoraríamos falar com você. Abraços, [Nome dos Noivos].", request.GuestName),
	}
}

func (a *Assistant) VendorQuestions(ctx context.Context, request VendorQuestionsRequest) VendorQuestionsResponse {
	response, err := a.generator.VendorQuestions(ctx, request)
	if err == nil && len(response.Questions) > 0 {
		return response
	}
	fallback("vendor-questions", err)

	return VendorQuestionsResponse{
		Questions: []string{
			"O que está incluído nos seus pacotes e serviços?",
			"Quais datas você ainda tem disponíveis?",
			"Qual é a sua política de cancelamento e reagendamento?",
			"Você já trabalhou no local da nossa cerimônia ou recepção?",
		},
	}
}

func (a *Assistant) TaskSuggestions(ctx context.Context, request TaskSuggestionsRequest) TaskSuggestionsResponse {
	response, err := a.generator.TaskSuggestions(ctx, request)
	if err == nil && len(response.Tasks) > 0 {
		return response
	}
	fallback("task-suggestions", err)

	return TaskSuggestionsResponse{
		Tasks: []TaskSuggestion{
			{
				Title:       "Definir as prioridades do casamento",
				Description: "Conversem sobre o que é mais importante para vocês e usem isso para guiar as decisões, especialmente as financeiras.",
				Category:    "Planejamento",
			},
			{
				Title:       "Pesquisar e visitar locais para a recepção",
				Description: "Listar potenciais locais, verificar disponibilidade e agendar visitas.",
				Category:    "Fornecedores",
			},
			{
				Title:       "Montar a lista de convidados",
				Description: "Fazer uma primeira versão da lista de convidados para estimar o tamanho da festa.",
				Category:    "Convidados",
			},
		},
	}
}

func (a *Assistant) CoupleVibe(ctx context.Context, request CoupleVibeRequest) CoupleVibeResponse {
	response, err := a.generator.CoupleVibe(ctx, request)
	if err == nil && strings.TrimSpace(response.Vibe) != "" {
		return response
	}
	fallback("couple-vibe", err)

	return CoupleVibeResponse{
		Vibe: fmt.Sprintf("Que a jornada de %s e %s seja repleta de amor e felicidade!", request.BrideName, request.GroomName),
	}
}

func (a *Assistant) WeddingTip(ctx context.Context, request WeddingTipRequest) WeddingTipResponse {
	response, err := a.generator.WeddingTip(ctx, request)
	if err == nil && strings.TrimSpace(response.Tip) != "" {
		return response
	}
	fallback("wedding-tip", err)

	return WeddingTipResponse{
		Tip: "Lembre-se de aproveitar cada momento do planejamento, pois ele também faz parte da jornada do casamento!",
	}
}

func (a *Assistant) TransactionDescription(ctx context.Context, request TransactionDescriptionRequest) TransactionDescriptionResponse {
	response, err := a.generator.TransactionDescription(ctx, request)
	if err == nil && strings.TrimSpace(response.SuggestedDescription) != "" {
		return response
	}
	fallback("transaction-description", err)

	prefix := "Entrada de"
	if request.Type == TransactionTypeExpense {
		prefix = "Despesa com"
	}

	suggested := fmt.Sprintf("%s %s", prefix, request.CategoryName)
	if request.CurrentDescription != "" {
		suggested = fmt.Sprintf("%s - %s", suggested, request.CurrentDescription)
	}

	return TransactionDescriptionResponse{SuggestedDescription: suggested}
}
