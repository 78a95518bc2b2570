package health

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
	ErrNotFound     = errors.New("not found")
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

type AddVaccinationInput struct {
	Name         string
	Date         string
	NextDue      string
	Veterinarian string
	Notes        string
}

// AddVaccination registra una vacuna con estado inicial "up-to-date".
// La validación de campos obligatorios ocurre en el borde (form/handler);
// acá solo se exige lo mínimo para que el registro tenga sentido.
func (s *Service) AddVaccination(ctx context.Context, petID string, in AddVaccinationInput) (Vaccination, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Date) == "" {
		return Vaccination{}, ErrInvalidInput
	}

	v := Vaccination{
		ID:           uuid.NewString(),
		PetID:        petID,
		Name:         security.Clean(in.Name),
		Date:         strings.TrimSpace(in.Date),
		NextDue:      strings.TrimSpace(in.NextDue),
		Veterinarian: security.Clean(in.Veterinarian),
		Notes:        security.Clean(in.Notes),
		Status:       VaccinationUpToDate,
		CreatedAt:    s.now(),
	}

	if err := s.repo.CreateVaccination(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

// ToggleVaccination alterna up-to-date <-> overdue. Sin historial de estados.
// petID acota la búsqueda: un id de otra mascota se reporta como not found.
func (s *Service) ToggleVaccination(ctx context.Context, petID, id string) (Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccination{}, ErrInvalidInput
	}

	v, err := s.repo.GetVaccination(ctx, id)
	if err != nil || v.PetID != petID {
		return Vaccination{}, ErrNotFound
	}

	v.Status = v.Status.Toggle()
	if err := s.repo.UpdateVaccination(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) ListVaccinations(ctx context.Context, petID string) ([]Vaccination, error) {
	return s.repo.ListVaccinations(ctx, petID)
}

type AddTreatmentInput struct {
	Name         string
	Type         string
	StartDate    string
	EndDate      string
	Frequency    string
	Dosage       string
	Instructions string
	Veterinarian string
}

// AddTreatment registra un tratamiento con estado inicial "en-cours".
func (s *Service) AddTreatment(ctx context.Context, petID string, in AddTreatmentInput) (Treatment, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Name) == "" {
		return Treatment{}, ErrInvalidInput
	}

	t := Treatment{
		ID:           uuid.NewString(),
		PetID:        petID,
		Name:         security.Clean(in.Name),
		Type:         security.Clean(in.Type),
		StartDate:    strings.TrimSpace(in.StartDate),
		EndDate:      strings.TrimSpace(in.EndDate),
		Frequency:    security.Clean(in.Frequency),
		Dosage:       security.Clean(in.Dosage),
		Instructions: security.Clean(in.Instructions),
		Veterinarian: security.Clean(in.Veterinarian),
		Status:       TreatmentOngoing,
		CreatedAt:    s.now(),
	}

	if err := s.repo.CreateTreatment(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

// ToggleTreatment alterna en-cours <-> terminé.
func (s *Service) ToggleTreatment(ctx context.Context, petID, id string) (Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Treatment{}, ErrInvalidInput
	}

	t, err := s.repo.GetTreatment(ctx, id)
	if err != nil || t.PetID != petID {
		return Treatment{}, ErrNotFound
	}

	t.Status = t.Status.Toggle()
	if err := s.repo.UpdateTreatment(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) ListTreatments(ctx context.Context, petID string) ([]Treatment, error) {
	return s.repo.ListTreatments(ctx, petID)
}

type AddVisitInput struct {
	Date         string
	Reason       string
	Veterinarian string
	Diagnosis    string
	Treatment    string
	Notes        string
	FollowUp     string
	Cost         string
}

func (s *Service) AddVisit(ctx context.Context, petID string, in AddVisitInput) (MedicalVisit, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Reason) == "" || strings.TrimSpace(in.Date) == "" {
		return MedicalVisit{}, ErrInvalidInput
	}

	v := MedicalVisit{
		ID:           uuid.NewString(),
		PetID:        petID,
		Date:         strings.TrimSpace(in.Date),
		Reason:       security.Clean(in.Reason),
		Veterinarian: security.Clean(in.Veterinarian),
		Diagnosis:    security.Clean(in.Diagnosis),
		Treatment:    security.Clean(in.Treatment),
		Notes:        security.Clean(in.Notes),
		FollowUp:     strings.TrimSpace(in.FollowUp),
		Cost:         strings.TrimSpace(in.Cost),
		CreatedAt:    s.now(),
	}

	if err := s.repo.CreateVisit(ctx, v); err != nil {
		return MedicalVisit{}, err
	}
	return v, nil
}

func (s *Service) ListVisits(ctx context.Context, petID string) ([]MedicalVisit, error) {
	return s.repo.ListVisits(ctx, petID)
}

type AddWeightInput struct {
	Weight   float64
	Date     string
	Time     string
	Location string
	Notes    string
}

func (s *Service) AddWeight(ctx context.Context, petID string, in AddWeightInput) (WeightEntry, error) {
	if strings.TrimSpace(petID) == "" || in.Weight <= 0 || strings.TrimSpace(in.Date) == "" {
		return WeightEntry{}, ErrInvalidInput
	}

	w := WeightEntry{
		ID:        uuid.NewString(),
		PetID:     petID,
		Weight:    in.Weight,
		Date:      strings.TrimSpace(in.Date),
		Time:      strings.TrimSpace(in.Time),
		Location:  security.Clean(in.Location),
		Notes:     security.Clean(in.Notes),
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateWeight(ctx, w); err != nil {
		return WeightEntry{}, err
	}
	return w, nil
}

func (s *Service) ListWeights(ctx context.Context, petID string) ([]WeightEntry, error) {
	return s.repo.ListWeights(ctx, petID)
}
