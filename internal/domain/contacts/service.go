package contacts

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

type AddInput struct {
	Name         string
	Phone        string
	Address      string
	Distance     string
	Availability string
	Type         string
}

func (s *Service) Add(ctx context.Context, in AddInput) (EmergencyContact, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return EmergencyContact{}, ErrInvalidInput
	}
	typ, ok := ParseContactType(strings.TrimSpace(in.Type))
	if !ok {
		return EmergencyContact{}, ErrInvalidInput
	}

	c := EmergencyContact{
		ID:           uuid.NewString(),
		Name:         security.Clean(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      security.Clean(in.Address),
		Distance:     strings.TrimSpace(in.Distance),
		Availability: security.Clean(in.Availability),
		Type:         typ,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return EmergencyContact{}, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]EmergencyContact, error) {
	return s.repo.List(ctx)
}

// FirstAidSteps devuelve la guía fija de primeros auxilios. Contenido
// estático: no depende de la mascota ni del usuario.
func (s *Service) FirstAidSteps() []FirstAidStep {
	return []FirstAidStep{
		{Title: "Gardez votre calme", Description: "Votre stress peut angoisser votre animal", Icon: "🧘‍♀️"},
		{Title: "Sécurisez la zone", Description: "Éloignez les autres animaux et personnes", Icon: "🛡️"},
		{Title: "Évaluez la situation", Description: "Respiration, conscience, saignements", Icon: "👀"},
		{Title: "Contactez un vétérinaire", Description: "Décrivez précisément les symptômes", Icon: "📞"},
	}
}

// SeedDefaults carga los tres contactos de demo si el repositorio está vacío.
func (s *Service) SeedDefaults(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []AddInput{
		{
			Name:         "Dr. Martin - Vétérinaire habituel",
			Phone:        "01 23 45 67 89",
			Address:      "123 Rue de la Santé, 75001 Paris",
			Distance:     "2.3 km",
			Availability: "Fermé",
			Type:         string(TypeRegular),
		},
		{
			Name:         "Clinique Vétérinaire d'Urgence",
			Phone:        "01 98 76 54 32",
			Address:      "456 Avenue de l'Urgence, 75002 Paris",
			Distance:     "1.8 km",
			Availability: "24h/24",
			Type:         string(TypeEmergency),
		},
		{
			Name:         "Centre Hospitalier Vétérinaire",
			Phone:        "01 11 22 33 44",
			Address:      "789 Boulevard du Secours, 75003 Paris",
			Distance:     "3.1 km",
			Availability: "Ouvert",
			Type:         string(TypeHospital),
		},
	}

	for _, in := range defaults {
		if _, err := s.Add(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
