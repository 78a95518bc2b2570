package assistant

import "time"

// Role distingue quién escribió el mensaje.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message es una entrada de la conversación con el asistente. Confidence
// (0-100) y Suggestions solo aplican a mensajes del asistente.
type Message struct {
	ID     string
	UserID string

	Role        Role
	Text        string
	Confidence  int
	Suggestions []string

	CreatedAt time.Time
}
