package journal

import (
	"context"
	"testing"

	"pet-companion/internal/domain/timeline"
)

func TestService_TimelineItems_ProjectsAllCollections(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.AddActivity(ctx, "pet-1", AddActivityInput{Date: "2024-01-22", Type: "Balade", Duration: "45 min"}); err != nil {
		t.Fatalf("AddActivity error: %v", err)
	}
	if _, err := svc.AddMemory(ctx, "pet-1", AddMemoryInput{Kind: "video", Date: "2024-01-18", URL: "https://example.com/tour.mp4", Caption: "Max apprend un nouveau tour"}); err != nil {
		t.Fatalf("AddMemory error: %v", err)
	}
	if _, err := svc.AddEvent(ctx, "pet-1", AddEventInput{Date: "2024-01-10", Title: "Anniversaire"}); err != nil {
		t.Fatalf("AddEvent error: %v", err)
	}

	items, err := svc.TimelineItems(ctx, "pet-1")
	if err != nil {
		t.Fatalf("TimelineItems error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	kinds := map[timeline.Category]int{}
	for _, it := range items {
		kinds[timeline.Normalize(it).Kind]++
		if it.Date == "" || it.Fields == nil {
			t.Fatalf("expected date + flattened fields on every item, got %+v", it)
		}
	}
	if kinds[timeline.CategoryActivity] != 1 || kinds[timeline.CategoryVideo] != 1 {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
	// el evento genérico no lleva discriminante: Classify lo deja en unknown
	if kinds[timeline.CategoryUnknown] != 1 {
		t.Fatalf("expected generic event classified as unknown, got %v", kinds)
	}
}
