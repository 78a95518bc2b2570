package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-companion/internal/domain/assistant"
)

// assistantRepo guarda la conversación por usuario. El chat es efímero por
// diseño: solo vive en memoria, no hay variante postgres.
type assistantRepo struct {
	mu     sync.RWMutex
	byUser map[string][]assistant.Message
}

func NewAssistantRepo() assistant.Repository {
	return &assistantRepo{
		byUser: make(map[string][]assistant.Message),
	}
}

func (r *assistantRepo) Append(ctx context.Context, m assistant.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if strings.TrimSpace(m.UserID) == "" {
		return errors.New("message user id required")
	}
	r.byUser[m.UserID] = append(r.byUser[m.UserID], m)
	return nil
}

func (r *assistantRepo) ListByUser(ctx context.Context, userID string) ([]assistant.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.byUser[userID]
	out := make([]assistant.Message, len(src))
	copy(out, src)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
