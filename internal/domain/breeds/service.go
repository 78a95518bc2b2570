package breeds

import (
	"context"
	"errors"
	"strings"

	breedsport "pet-companion/internal/ports/breeds"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// builtin es la tabla embebida de fichas de raza. Sirve de fallback cuando el
// catálogo externo no está configurado o falla en runtime.
var builtin = map[string]breedsport.Facts{
	"golden retriever": {
		Breed:       "Golden Retriever",
		Description: "Le Golden Retriever est un chien de taille moyenne à grande, connu pour son tempérament doux et sa loyauté exceptionnelle. Originaire d'Écosse, cette race est idéale pour les familles.",
		Temperament: []string{"Amical", "Intelligent", "Dévoué", "Confiant"},
		Size:        "Moyen à grand",
		Weight:      "25-34 kg",
		Lifespan:    "10-12 ans",
		Energy:      "Élevé",
		DailyNeeds:  "1-2 heures par jour",
		CommonIssue: []string{"Dysplasie de la hanche", "Problèmes oculaires", "Allergies cutanées"},
	},
}

// fallbackFacts es la ficha genérica para razas fuera de la tabla.
func fallbackFacts(breed string) breedsport.Facts {
	return breedsport.Facts{
		Breed:       breed,
		Description: "Cette race possède des caractéristiques uniques qui en font un compagnon merveilleux pour les bonnes familles.",
		Temperament: []string{"Affectueux", "Loyal", "Intelligent"},
		Size:        "Variable",
		Weight:      "Variable",
		Lifespan:    "10-15 ans",
		Energy:      "Moyen",
		DailyNeeds:  "30 minutes à 2 heures",
		CommonIssue: []string{"Consultez votre vétérinaire"},
	}
}

type Service struct {
	resolver breedsport.Resolver
}

// NewService acepta resolver nil: en ese caso solo se usa la tabla embebida.
func NewService(resolver breedsport.Resolver) *Service {
	return &Service{resolver: resolver}
}

// Facts resuelve la ficha de una raza. Orden de resolución: catálogo externo
// si está configurado, tabla embebida, ficha genérica. Un error del catálogo
// degrada silenciosamente al contenido embebido; la pantalla nunca queda vacía.
func (s *Service) Facts(ctx context.Context, breed string) (breedsport.Facts, error) {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return breedsport.Facts{}, ErrInvalidInput
	}

	if s.resolver != nil && s.resolver.IsConfigured() {
		if f, err := s.resolver.Facts(ctx, breed); err == nil && f.Breed != "" {
			return f, nil
		}
	}

	if f, ok := builtin[strings.ToLower(breed)]; ok {
		return f, nil
	}
	return fallbackFacts(breed), nil
}
