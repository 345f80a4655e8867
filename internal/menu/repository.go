package menu

import "context"

// Repository defines all database operations for menus
type Repository interface {
	// LatestActive returns the most recently updated active menu of the
	// given type, or a notFound error.
	LatestActive(ctx context.Context, restaurantID, menuType string) (*Menu, error)

	// Upsert replaces the active menu of the same type, or creates one.
	Upsert(ctx context.Context, m *Menu) error
}
