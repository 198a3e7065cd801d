package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/bellanote/backend/internal/types"
)

// Gemini generates assistant copy with Google Gemini.
type Gemini struct {
	apiKey    string
	modelName string
}

// NewGemini returns a Gemini generator. The generator is unavailable when
// the API key is empty.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the generator is properly configured.
func (g *Gemini) IsAvailable() bool {
	return g.apiKey != ""
}

// generate sends a prompt, strips markdown code fences from the answer
// and decodes the JSON payload into out.
func (g *Gemini) generate(ctx context.Context, prompt string, out any) error {
	if !g.IsAvailable() {
		return fmt.Errorf("gemini is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return fmt.Errorf("no text content in response")
	}

	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	if err := json.Unmarshal([]byte(textContent), out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	return nil
}

func (g *Gemini) ThankYouNote(ctx context.Context, request ThankYouNoteRequest) (ThankYouNoteResponse, error) {
	var sb strings.Builder

	sb.WriteString("Você é um assistente para noivos, ajudando a escrever notas de agradecimento para presentes de casamento.\n")
	sb.WriteString("Gere uma nota de agradecimento curta, sincera e calorosa.\n")
	fmt.Fprintf(&sb, "O presente recebido foi: %s.\n", request.GiftName)
	if request.GiverName != "" {
		fmt.Fprintf(&sb, "Quem presenteou foi: %s. Dirija-se a ele(a) carinhosamente.\n", request.GiverName)
	} else {
		sb.WriteString("O nome de quem presenteou não foi especificado, comece de forma mais genérica.\n")
	}
	sb.WriteString(`
A nota deve agradecer especificamente pelo presente, expressar como ele
será útil ou apreciado, transmitir gratidão pela generosidade e terminar
com um fechamento afetuoso e um placeholder "[Nomes dos Noivos]" para a
assinatura.

Responda com um objeto JSON no formato {"note": "..."}.
`)

	var response ThankYouNoteResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

func (g *Gemini) GuestMessage(ctx context.Context, request GuestMessageRequest) (GuestMessageResponse, error) {
	var sb strings.Builder

	sb.WriteString("Você é um assistente de planejamento de casamentos amigável e prestativo.\n")
	fmt.Fprintf(&sb, "Gere uma mensagem curta, educada e calorosa para um convidado do casamento chamado %s.\n", request.GuestName)
	fmt.Fprintf(&sb, "O propósito da mensagem é: %s.\n", request.Context)
	sb.WriteString(`A mensagem deve ser apropriada para ser enviada por WhatsApp ou SMS.
Mantenha um tom pessoal e alegre. Substitua dados que você não conhece
por placeholders como [Data do Casamento] e [Nome dos Noivos].

Responda com um objeto JSON no formato {"message": "..."}.
`)

	var response GuestMessageResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

func (g *Gemini) VendorQuestions(ctx context.Context, request VendorQuestionsRequest) (VendorQuestionsResponse, error) {
	var sb strings.Builder

	sb.WriteString("Você é um assistente de planejamento de casamentos experiente.\n")
	fmt.Fprintf(&sb, "Para a categoria de fornecedor \"%s\", sugira de 3 a 5 perguntas importantes e específicas que os noivos deveriam fazer ao contatar potenciais fornecedores dessa categoria.\n", request.VendorCategory)
	sb.WriteString(`Concentre-se em perguntas que ajudem a avaliar a adequação, o
profissionalismo, a experiência e os detalhes do serviço do fornecedor.
Evite perguntas genéricas como "Qual o seu preço?".

Responda com um objeto JSON no formato {"questions": ["...", "..."]}.
`)

	var response VendorQuestionsResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

func (g *Gemini) TaskSuggestions(ctx context.Context, request TaskSuggestionsRequest) (TaskSuggestionsResponse, error) {
	var sb strings.Builder

	months := monthsUntil(time.Now(), request.WeddingDate)
	packages := "Nenhum específico ainda"
	if len(request.SelectedPackages) > 0 {
		packages = strings.Join(request.SelectedPackages, ", ")
	}

	sb.WriteString("Você é um planejador de casamentos experiente.\n")
	fmt.Fprintf(&sb, "A data do casamento é %s. Atualmente faltam %d meses para o casamento.\n", request.WeddingDate, months)
	fmt.Fprintf(&sb, "Os pacotes de serviços já selecionados são: %s.\n", packages)
	if request.UserPrompt != "" {
		fmt.Fprintf(&sb, "O usuário especificou que precisa de ajuda com: \"%s\". Priorize tarefas relacionadas a isso.\n", request.UserPrompt)
	}
	sb.WriteString(`
Baseado no tempo restante e nos pacotes selecionados, sugira de 3 a 5
tarefas de planejamento de casamento relevantes para este momento.
Concentre-se em tarefas acionáveis e apropriadas para a fase atual.

Responda com um objeto JSON no formato
{"tasks": [{"title": "...", "description": "...", "category": "..."}]}.
`)

	var response TaskSuggestionsResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

func (g *Gemini) CoupleVibe(ctx context.Context, request CoupleVibeRequest) (CoupleVibeResponse, error) {
	var sb strings.Builder

	sb.WriteString("Você é um assistente de casamento criativo e otimista.\n")
	fmt.Fprintf(&sb, "Os nomes dos noivos são %s e %s.\n", request.BrideName, request.GroomName)
	sb.WriteString(`Gere uma "vibe de casal" curta e divertida para eles, ou uma pequena
citação inspiradora sobre amor e casamento. Pode ser algo que combine os
nomes deles de forma lúdica, ou apenas uma frase bonita. Mantenha o tom
leve, romântico e encorajador. Máximo 2 frases.

Responda com um objeto JSON no formato {"vibe": "..."}.
`)

	var response CoupleVibeResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

func (g *Gemini) WeddingTip(ctx context.Context, request WeddingTipRequest) (WeddingTipResponse, error) {
	var sb strings.Builder

	sb.WriteString("Você é um conselheiro de casamentos experiente e amigável.\n")
	sb.WriteString("Forneça uma dica de planejamento de casamento útil, concisa e inspiradora.\n")
	if !request.WeddingDate.IsZero() {
		months := monthsUntil(time.Now(), request.WeddingDate)
		fmt.Fprintf(&sb, "A data do casamento é %s. Faltam aproximadamente %d meses. Adapte a dica para esta fase, se possível.\n", request.WeddingDate, months)
	} else {
		sb.WriteString("A dica pode ser geral sobre planejamento de casamentos.\n")
	}
	sb.WriteString(`A dica deve ser positiva e encorajadora. Evite clichês excessivos.

Responda com um objeto JSON no formato {"tip": "..."}.
`)

	var response WeddingTipResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

func (g *Gemini) TransactionDescription(ctx context.Context, request TransactionDescriptionRequest) (TransactionDescriptionResponse, error) {
	var sb strings.Builder

	sb.WriteString("Você é um assistente financeiro para planejamento de casamentos.\n")
	sb.WriteString("Ajude a criar uma descrição clara e detalhada para uma transação financeira.\n")
	fmt.Fprintf(&sb, "Tipo de transação: %s\n", request.Type)
	fmt.Fprintf(&sb, "Valor: %s\n", types.FormatBRL(request.Amount))
	fmt.Fprintf(&sb, "Categoria: %s\n", request.CategoryName)
	if request.CurrentDescription != "" {
		fmt.Fprintf(&sb, "Descrição atual (para aprimorar): \"%s\"\n", request.CurrentDescription)
	}
	sb.WriteString(`
Sugira uma descrição mais completa. Se for uma despesa, pode incluir
"Pagamento referente a..." ou "Despesa com...". Se for uma receita, pode
incluir "Entrada de..." ou "Recebimento de...". Tente inferir o serviço
ou item específico da categoria.

Responda com um objeto JSON no formato {"suggestedDescription": "..."}.
`)

	var response TransactionDescriptionResponse
	err := g.generate(ctx, sb.String(), &response)
	return response, err
}

// monthsUntil returns the number of whole months between now and the
// date, 0 when the date is unset or in the past.
func monthsUntil(now time.Time, date types.Date) int {
	if date.IsZero() {
		return 0
	}

	target := date.Time()
	if !target.After(now) {
		return 0
	}

	months := (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
	if types.DateOf(now).AddMonths(months).After(date) {
		months--
	}

	if months < 0 {
		return 0
	}

	return months
}
