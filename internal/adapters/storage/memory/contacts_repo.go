package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-companion/internal/domain/contacts"
)

type contactsRepo struct {
	mu   sync.RWMutex
	byID map[string]contacts.EmergencyContact
}

func NewContactsRepo() contacts.Repository {
	return &contactsRepo{
		byID: make(map[string]contacts.EmergencyContact),
	}
}

func (r *contactsRepo) Create(ctx context.Context, c contacts.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("contact id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("contact already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *contactsRepo) List(ctx context.Context) ([]contacts.EmergencyContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contacts.EmergencyContact, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
