package assistant

import "context"

// CannedResponder es el fallback sin LLM: siempre devuelve la misma respuesta
// de cortesía. Mantiene la conversación viva cuando no hay API key o el motor
// principal falla.
type CannedResponder struct{}

func (CannedResponder) Reply(_ context.Context, _, _ string) (Reply, error) {
	return Reply{
		Text: "Je vais analyser votre question et vous donner une réponse personnalisée basée sur les données de vos animaux...",
	}, nil
}

func (CannedResponder) IsConfigured() bool { return true }
