package assistant

import "context"

// Reply es la respuesta cruda de un motor de conversación: texto más
// sugerencias de seguimiento opcionales. La confianza la asigna el servicio.
type Reply struct {
	Text        string
	Suggestions []string
}

// Responder es un motor capaz de contestar una pregunta sobre la mascota.
// La implementación real llama a un LLM; la embebida contesta con la
// respuesta fija de la app original.
type Responder interface {
	Reply(ctx context.Context, petName, question string) (Reply, error)
	IsConfigured() bool
}
