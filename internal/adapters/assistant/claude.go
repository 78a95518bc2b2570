// Package assistant contiene el motor de conversación respaldado por la API
// de Anthropic.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	domain "pet-companion/internal/domain/assistant"
	"pet-companion/internal/platform/logger"
)

const (
	// replyMaxTokens acota la respuesta del modelo: el chat muestra párrafos
	// cortos, no ensayos.
	replyMaxTokens = 512

	// maxSuggestions es el tope de sugerencias de seguimiento mostradas.
	maxSuggestions = 3
)

// ClaudeResponder responde preguntas de bienestar animal usando Claude.
// Implementa domain.Responder; los fallos se degradan al fallback del
// servicio, nunca se propagan al cliente.
type ClaudeResponder struct {
	client *anthropic.Client
	model  string
	log    logger.Logger
}

func NewClaudeResponder(apiKey, model string, log logger.Logger) *ClaudeResponder {
	if strings.TrimSpace(apiKey) == "" {
		return &ClaudeResponder{log: log}
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ClaudeResponder{
		client: &c,
		model:  model,
		log:    log,
	}
}

func (r *ClaudeResponder) IsConfigured() bool {
	return r.client != nil && strings.TrimSpace(r.model) != ""
}

func (r *ClaudeResponder) Reply(ctx context.Context, petName, question string) (domain.Reply, error) {
	if !r.IsConfigured() {
		return domain.Reply{}, fmt.Errorf("claude responder not configured")
	}

	prompt := buildPrompt(petName, question)

	resp, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: replyMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		r.log.Warn("claude responder: API call failed, se usa el fallback", logger.Fields{"error": err.Error()})
		return domain.Reply{}, err
	}

	var text string
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			text = strings.TrimSpace(resp.Content[i].Text)
			break
		}
	}
	if text == "" {
		return domain.Reply{}, fmt.Errorf("claude responder: empty response")
	}

	return parseReply(text), nil
}

func buildPrompt(petName, question string) string {
	var sb strings.Builder
	sb.WriteString("Tu es PetSoul, un assistant de bien-être animal. ")
	sb.WriteString("Réponds en français, en un paragraphe court et concret. ")
	sb.WriteString("Tu peux terminer par jusqu'à trois suggestions de suivi, chacune sur sa propre ligne commençant par \"- \".\n\n")
	if strings.TrimSpace(petName) != "" {
		fmt.Fprintf(&sb, "Animal concerné : %s\n", petName)
	}
	fmt.Fprintf(&sb, "Question : %s", question)
	return sb.String()
}

// parseReply separa el párrafo de respuesta de las líneas de sugerencia
// ("- ..."). Texto que no sigue el formato queda entero como respuesta.
func parseReply(text string) domain.Reply {
	var reply domain.Reply
	var body []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(trimmed, "- "); ok && len(reply.Suggestions) < maxSuggestions {
			if s := strings.TrimSpace(after); s != "" {
				reply.Suggestions = append(reply.Suggestions, s)
			}
			continue
		}
		if trimmed != "" {
			body = append(body, trimmed)
		}
	}

	reply.Text = strings.Join(body, " ")
	if reply.Text == "" {
		reply.Text = text
		reply.Suggestions = nil
	}
	return reply
}
