package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-companion/internal/security"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AddActivityInput struct {
	Date     string
	Type     string
	Duration string
	Notes    string
}

func (s *Service) AddActivity(ctx context.Context, petID string, in AddActivityInput) (ActivityEntry, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Date) == "" {
		return ActivityEntry{}, ErrInvalidInput
	}

	a := ActivityEntry{
		ID:        uuid.NewString(),
		PetID:     petID,
		Date:      strings.TrimSpace(in.Date),
		Type:      security.Clean(in.Type),
		Duration:  security.Clean(in.Duration),
		Notes:     security.Clean(in.Notes),
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateActivity(ctx, a); err != nil {
		return ActivityEntry{}, err
	}
	return a, nil
}

func (s *Service) ListActivities(ctx context.Context, petID string) ([]ActivityEntry, error) {
	return s.repo.ListActivities(ctx, petID)
}

type AddMemoryInput struct {
	Kind    string
	Date    string
	URL     string
	Caption string
}

// AddMemory valida el kind estrictamente: "photo" y "video" son los únicos
// valores que la clasificación del feed reconoce como recuerdo.
func (s *Service) AddMemory(ctx context.Context, petID string, in AddMemoryInput) (Memory, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.URL) == "" || strings.TrimSpace(in.Date) == "" {
		return Memory{}, ErrInvalidInput
	}
	kind, ok := ParseMemoryKind(strings.TrimSpace(in.Kind))
	if !ok {
		return Memory{}, ErrInvalidInput
	}

	m := Memory{
		ID:        uuid.NewString(),
		PetID:     petID,
		Kind:      kind,
		Date:      strings.TrimSpace(in.Date),
		URL:       strings.TrimSpace(in.URL),
		Caption:   security.Clean(in.Caption),
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateMemory(ctx, m); err != nil {
		return Memory{}, err
	}
	return m, nil
}

func (s *Service) ListMemories(ctx context.Context, petID string) ([]Memory, error) {
	return s.repo.ListMemories(ctx, petID)
}

type AddEventInput struct {
	Date        string
	Title       string
	Description string
	Duration    string
}

func (s *Service) AddEvent(ctx context.Context, petID string, in AddEventInput) (Event, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Date) == "" {
		return Event{}, ErrInvalidInput
	}

	e := Event{
		ID:          uuid.NewString(),
		PetID:       petID,
		Date:        strings.TrimSpace(in.Date),
		Title:       security.Clean(in.Title),
		Description: security.Clean(in.Description),
		Duration:    security.Clean(in.Duration),
		CreatedAt:   s.now(),
	}

	if err := s.repo.CreateEvent(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) ListEvents(ctx context.Context, petID string) ([]Event, error) {
	return s.repo.ListEvents(ctx, petID)
}
