package timeline

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Source es una colección que sabe proyectarse al feed. La concatenación de
// fuentes reemplaza el merge ad hoc de listas en la UI original: cada módulo
// de dominio (salud, diario) aporta sus registros ya etiquetados.
type Source interface {
	TimelineItems(ctx context.Context, petID string) ([]Item, error)
}

type Service struct {
	sources []Source
}

func NewService(sources ...Source) *Service {
	return &Service{sources: sources}
}

// Feed arma el timeline de una mascota: junta todas las fuentes, aplica el
// predicado combinado y ordena. limit acota el resultado (1-200, default 50);
// paginación real queda como punto de extensión.
func (s *Service) Feed(ctx context.Context, petID string, quick QuickFilter, f Filters, limit int) ([]Item, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}

	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	all := make([]Item, 0)
	for _, src := range s.sources {
		items, err := src.TimelineItems(ctx, petID)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	out := Aggregate(all, quick, f)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
