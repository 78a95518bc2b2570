package journal

import (
	"context"

	"pet-companion/internal/domain/timeline"
)

// TimelineItems proyecta actividades, recuerdos y eventos genéricos al feed.
func (s *Service) TimelineItems(ctx context.Context, petID string) ([]timeline.Item, error) {
	activities, err := s.repo.ListActivities(ctx, petID)
	if err != nil {
		return nil, err
	}
	memories, err := s.repo.ListMemories(ctx, petID)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListEvents(ctx, petID)
	if err != nil {
		return nil, err
	}

	out := make([]timeline.Item, 0, len(activities)+len(memories)+len(events))
	for _, a := range activities {
		out = append(out, activityItem(a))
	}
	for _, m := range memories {
		out = append(out, memoryItem(m))
	}
	for _, e := range events {
		out = append(out, eventItem(e))
	}
	return out, nil
}

func activityItem(a ActivityEntry) timeline.Item {
	return timeline.Item{
		ID:       a.ID,
		Kind:     timeline.CategoryActivity,
		Date:     a.Date,
		Title:    a.Type,
		Notes:    a.Notes,
		Duration: a.Duration,
		Fields: map[string]string{
			"id":       a.ID,
			"date":     a.Date,
			"type":     a.Type,
			"duration": a.Duration,
			"notes":    a.Notes,
		},
	}
}

func memoryItem(m Memory) timeline.Item {
	return timeline.Item{
		ID:      m.ID,
		Kind:    timeline.Category(m.Kind),
		Date:    m.Date,
		Title:   m.Caption,
		URL:     m.URL,
		Caption: m.Caption,
		Fields: map[string]string{
			"id":      m.ID,
			"date":    m.Date,
			"type":    string(m.Kind),
			"url":     m.URL,
			"caption": m.Caption,
		},
	}
}

// eventItem no lleva discriminante: el evento genérico es justamente el caso
// que la clasificación estructural resuelve (sin reason ni type => unknown).
func eventItem(e Event) timeline.Item {
	return timeline.Item{
		ID:       e.ID,
		Date:     e.Date,
		Title:    e.Title,
		Notes:    e.Description,
		Duration: e.Duration,
		Fields: map[string]string{
			"id":          e.ID,
			"date":        e.Date,
			"title":       e.Title,
			"description": e.Description,
			"duration":    e.Duration,
		},
	}
}

var _ timeline.Source = (*Service)(nil)
