package breeds

import "context"

// Facts es la ficha informativa de una raza que muestra la app.
type Facts struct {
	Breed       string   `json:"breed"`
	Description string   `json:"description"`
	Temperament []string `json:"temperament"`
	Size        string   `json:"size"`
	Weight      string   `json:"weight"`
	Lifespan    string   `json:"lifespan"`
	Energy      string   `json:"energy"`
	DailyNeeds  string   `json:"daily_needs"`
	CommonIssue []string `json:"common_issues"`
}

// Resolver trae la ficha de una raza desde un catálogo externo.
// Si el catálogo no está configurado, el dominio usa su tabla embebida.
type Resolver interface {
	Facts(ctx context.Context, breed string) (Facts, error)
	IsConfigured() bool
}
