package assistant

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-companion/internal/security"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo     Repository
	primary  Responder
	fallback Responder

	now func() time.Time
	// confidence produce el porcentaje mostrado junto a la respuesta.
	// Reemplazable en tests; default 80-99 como en la app original.
	confidence func() int
}

// NewService acepta primary nil: en ese caso todo pasa por el fallback.
func NewService(repo Repository, primary Responder) *Service {
	return &Service{
		repo:     repo,
		primary:  primary,
		fallback: CannedResponder{},
		now:      time.Now,
		confidence: func() int {
			return rand.Intn(20) + 80
		},
	}
}

// Send registra la pregunta del usuario, consulta el motor de conversación y
// registra la respuesta. Un fallo del motor principal degrada al fallback;
// la conversación nunca queda sin respuesta.
func (s *Service) Send(ctx context.Context, userID, petName, question string) (Message, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(question) == "" {
		return Message{}, ErrInvalidInput
	}

	question = security.Clean(question)

	userMsg := Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      RoleUser,
		Text:      question,
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, userMsg); err != nil {
		return Message{}, err
	}

	reply := s.resolveReply(ctx, petName, question)

	aiMsg := Message{
		ID:          uuid.NewString(),
		UserID:      userID,
		Role:        RoleAI,
		Text:        reply.Text,
		Confidence:  s.confidence(),
		Suggestions: reply.Suggestions,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Append(ctx, aiMsg); err != nil {
		return Message{}, err
	}
	return aiMsg, nil
}

func (s *Service) resolveReply(ctx context.Context, petName, question string) Reply {
	if s.primary != nil && s.primary.IsConfigured() {
		if r, err := s.primary.Reply(ctx, petName, question); err == nil && strings.TrimSpace(r.Text) != "" {
			return r
		}
	}
	r, _ := s.fallback.Reply(ctx, petName, question)
	return r
}

func (s *Service) History(ctx context.Context, userID string) ([]Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

// QuickQuestions son los accesos rápidos del chat.
func (s *Service) QuickQuestions() []string {
	return []string{
		"Comment améliorer son alimentation ?",
		"Exercices recommandés pour son âge ?",
		"Signes de stress à surveiller ?",
		"Routine de toilettage optimale ?",
	}
}
