package contacts

import "context"

type Repository interface {
	Create(ctx context.Context, c EmergencyContact) error
	List(ctx context.Context) ([]EmergencyContact, error)
}
