package health

import (
	"context"

	"pet-companion/internal/domain/timeline"
)

// TimelineItems proyecta las visitas médicas al feed. Vacunas, tratamientos y
// pesadas viven en sus propias vistas del carnet; la cronología original solo
// mezcla visitas con actividades y recuerdos.
func (s *Service) TimelineItems(ctx context.Context, petID string) ([]timeline.Item, error) {
	visits, err := s.repo.ListVisits(ctx, petID)
	if err != nil {
		return nil, err
	}

	out := make([]timeline.Item, 0, len(visits))
	for _, v := range visits {
		out = append(out, visitItem(v))
	}
	return out, nil
}

func visitItem(v MedicalVisit) timeline.Item {
	return timeline.Item{
		ID:    v.ID,
		Kind:  timeline.CategoryMedical,
		Date:  v.Date,
		Title: v.Reason,
		Notes: v.Notes,
		Fields: map[string]string{
			"id":           v.ID,
			"date":         v.Date,
			"reason":       v.Reason,
			"veterinarian": v.Veterinarian,
			"diagnosis":    v.Diagnosis,
			"treatment":    v.Treatment,
			"notes":        v.Notes,
			"follow_up":    v.FollowUp,
			"cost":         v.Cost,
		},
	}
}

var _ timeline.Source = (*Service)(nil)
