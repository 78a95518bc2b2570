package journal

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	activities map[string]ActivityEntry
	memories   map[string]Memory
	events     map[string]Event
}

func newTestRepo() *testRepo {
	return &testRepo{
		activities: map[string]ActivityEntry{},
		memories:   map[string]Memory{},
		events:     map[string]Event{},
	}
}

func (r *testRepo) CreateActivity(ctx context.Context, a ActivityEntry) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.activities[a.ID] = a
	return nil
}

func (r *testRepo) ListActivities(ctx context.Context, petID string) ([]ActivityEntry, error) {
	out := make([]ActivityEntry, 0)
	for _, a := range r.activities {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) CreateMemory(ctx context.Context, m Memory) error {
	if m.ID == "" {
		return errors.New("repo: id required")
	}
	r.memories[m.ID] = m
	return nil
}

func (r *testRepo) ListMemories(ctx context.Context, petID string) ([]Memory, error) {
	out := make([]Memory, 0)
	for _, m := range r.memories {
		if m.PetID == petID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *testRepo) CreateEvent(ctx context.Context, e Event) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	r.events[e.ID] = e
	return nil
}

func (r *testRepo) ListEvents(ctx context.Context, petID string) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.events {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_AddActivity_SanitizesFreeText(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2024, 1, 22, 18, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.AddActivity(context.Background(), "pet-1", AddActivityInput{
		Date:     "2024-01-22",
		Type:     "Balade",
		Duration: "45 min",
		Notes:    "<b>Parc</b> des Buttes-Chaumont",
	})
	if err != nil {
		t.Fatalf("AddActivity error: %v", err)
	}
	if a.Notes != "Parc des Buttes-Chaumont" {
		t.Fatalf("expected markup stripped, got %q", a.Notes)
	}
	if a.CreatedAt != now {
		t.Fatalf("expected CreatedAt=now")
	}
}

func TestService_AddActivity_RequiresTypeAndDate(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.AddActivity(context.Background(), "pet-1", AddActivityInput{Date: "2024-01-22"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without type, got %v", err)
	}
	if _, err := svc.AddActivity(context.Background(), "pet-1", AddActivityInput{Type: "Jeu"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without date, got %v", err)
	}
}

func TestService_AddMemory_StrictKind(t *testing.T) {
	svc := NewService(newTestRepo())

	m, err := svc.AddMemory(context.Background(), "pet-1", AddMemoryInput{
		Kind:    "photo",
		Date:    "2024-01-20",
		URL:     "https://example.com/neige.jpg",
		Caption: "Première neige!",
	})
	if err != nil {
		t.Fatalf("AddMemory error: %v", err)
	}
	if m.Kind != MemoryPhoto {
		t.Fatalf("expected photo, got %s", m.Kind)
	}

	// cualquier otro kind se rechaza: el feed solo clasifica photo|video
	for _, bad := range []string{"", "gif", "PHOTO", "audio"} {
		if _, err := svc.AddMemory(context.Background(), "pet-1", AddMemoryInput{
			Kind: bad,
			Date: "2024-01-20",
			URL:  "https://example.com/x",
		}); err != ErrInvalidInput {
			t.Fatalf("kind %q: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestService_AddEvent_RequiresTitleAndDate(t *testing.T) {
	svc := NewService(newTestRepo())

	e, err := svc.AddEvent(context.Background(), "pet-1", AddEventInput{
		Date:  "2024-01-10",
		Title: "Anniversaire",
	})
	if err != nil {
		t.Fatalf("AddEvent error: %v", err)
	}
	if e.Title != "Anniversaire" {
		t.Fatalf("unexpected title %q", e.Title)
	}

	if _, err := svc.AddEvent(context.Background(), "pet-1", AddEventInput{Date: "2024-01-10"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without title, got %v", err)
	}
}

func TestService_Lists_AreScopedByPet(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.AddActivity(context.Background(), "pet-1", AddActivityInput{Date: "2024-01-22", Type: "Balade"}); err != nil {
		t.Fatalf("AddActivity error: %v", err)
	}
	if _, err := svc.AddActivity(context.Background(), "pet-2", AddActivityInput{Date: "2024-01-22", Type: "Jeu"}); err != nil {
		t.Fatalf("AddActivity error: %v", err)
	}

	got, err := svc.ListActivities(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("ListActivities error: %v", err)
	}
	if len(got) != 1 || got[0].Type != "Balade" {
		t.Fatalf("expected only pet-1 activities, got %+v", got)
	}
}
