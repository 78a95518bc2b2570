package pets

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
	ErrForbidden    = errors.New("forbidden")
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

type CreateInput struct {
	Name       string
	Breed      string
	Gender     string
	Sterilized bool
	ChipNumber string
	Color      string
	PhotoURL   string
	BirthDate  *time.Time
	Notes      string

	VetName    string
	VetPhone   string
	VetAddress string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         security.Clean(in.Name),
		Breed:        security.Clean(in.Breed),
		Gender:       strings.TrimSpace(in.Gender),
		Sterilized:   in.Sterilized,
		ChipNumber:   strings.TrimSpace(in.ChipNumber),
		Color:        security.Clean(in.Color),
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		BirthDate:    in.BirthDate,
		HealthStatus: HealthGood,
		Notes:        security.Clean(in.Notes),
		Veterinarian: VetContact{
			Name:    security.Clean(in.VetName),
			Phone:   strings.TrimSpace(in.VetPhone),
			Address: security.Clean(in.VetAddress),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name         *string
	Breed        *string
	Gender       *string
	Sterilized   *bool
	ChipNumber   *string
	Color        *string
	PhotoURL     *string
	BirthDate    *time.Time
	ClearBirth   bool
	HealthStatus *string
	Notes        *string
	VetName      *string
	VetPhone     *string
	VetAddress   *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = security.Clean(*in.Name)
	}
	if in.Breed != nil {
		p.Breed = security.Clean(*in.Breed)
	}
	if in.Gender != nil {
		p.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.Sterilized != nil {
		p.Sterilized = *in.Sterilized
	}
	if in.ChipNumber != nil {
		p.ChipNumber = strings.TrimSpace(*in.ChipNumber)
	}
	if in.Color != nil {
		p.Color = security.Clean(*in.Color)
	}
	if in.PhotoURL != nil {
		p.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if in.ClearBirth {
		p.BirthDate = nil
	} else if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.HealthStatus != nil {
		p.HealthStatus = HealthStatus(strings.TrimSpace(*in.HealthStatus))
	}
	if in.Notes != nil {
		p.Notes = security.Clean(*in.Notes)
	}
	if in.VetName != nil {
		p.Veterinarian.Name = security.Clean(*in.VetName)
	}
	if in.VetPhone != nil {
		p.Veterinarian.Phone = strings.TrimSpace(*in.VetPhone)
	}
	if in.VetAddress != nil {
		p.Veterinarian.Address = security.Clean(*in.VetAddress)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}
