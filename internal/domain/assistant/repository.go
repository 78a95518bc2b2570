package assistant

import "context"

type Repository interface {
	Append(ctx context.Context, m Message) error
	ListByUser(ctx context.Context, userID string) ([]Message, error)
}
