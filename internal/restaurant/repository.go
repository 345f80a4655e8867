package restaurant

import "context"

type Repository interface {
	// Create inserts the restaurant and links ownerID to it as OWNER.
	Create(ctx context.Context, restaurant *Restaurant, ownerID string) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	ListByMember(ctx context.Context, userID string) ([]*Restaurant, error)

	// Delete removes the restaurant and everything it owns.
	Delete(ctx context.Context, id string) error

	IsMember(ctx context.Context, restaurantID, userID string) (bool, error)
}
