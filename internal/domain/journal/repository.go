package journal

import "context"

type Repository interface {
	CreateActivity(ctx context.Context, a ActivityEntry) error
	ListActivities(ctx context.Context, petID string) ([]ActivityEntry, error)

	CreateMemory(ctx context.Context, m Memory) error
	ListMemories(ctx context.Context, petID string) ([]Memory, error)

	CreateEvent(ctx context.Context, e Event) error
	ListEvents(ctx context.Context, petID string) ([]Event, error)
}
