package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-companion/internal/domain/journal"
)

type journalRepo struct {
	mu         sync.RWMutex
	activities map[string]journal.ActivityEntry
	memories   map[string]journal.Memory
	events     map[string]journal.Event
}

func NewJournalRepo() journal.Repository {
	return &journalRepo{
		activities: make(map[string]journal.ActivityEntry),
		memories:   make(map[string]journal.Memory),
		events:     make(map[string]journal.Event),
	}
}

func (r *journalRepo) CreateActivity(ctx context.Context, a journal.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("activity id required")
	}
	if _, exists := r.activities[a.ID]; exists {
		return errors.New("activity already exists")
	}
	r.activities[a.ID] = a
	return nil
}

func (r *journalRepo) ListActivities(ctx context.Context, petID string) ([]journal.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journal.ActivityEntry, 0)
	for _, a := range r.activities {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *journalRepo) CreateMemory(ctx context.Context, m journal.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("memory id required")
	}
	if _, exists := r.memories[m.ID]; exists {
		return errors.New("memory already exists")
	}
	r.memories[m.ID] = m
	return nil
}

func (r *journalRepo) ListMemories(ctx context.Context, petID string) ([]journal.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journal.Memory, 0)
	for _, m := range r.memories {
		if m.PetID == petID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *journalRepo) CreateEvent(ctx context.Context, e journal.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, exists := r.events[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.events[e.ID] = e
	return nil
}

func (r *journalRepo) ListEvents(ctx context.Context, petID string) ([]journal.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journal.Event, 0)
	for _, e := range r.events {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
