package ingredient

import "context"

type Repository interface {
	// FindOrCreate returns the catalog entry whose name matches
	// case-insensitively, inserting it when absent.
	FindOrCreate(ctx context.Context, in *Ingredient) (*Ingredient, error)

	// AddToInventory inserts the stock row or refreshes the existing one
	// for the same restaurant and ingredient.
	AddToInventory(ctx context.Context, item *InventoryItem) error
	SetAvailability(ctx context.Context, restaurantID, inventoryID string, available bool) (*InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, restaurantID, inventoryID string) error
	DeleteAllForRestaurant(ctx context.Context, restaurantID string) (int64, error)
	ListInventory(ctx context.Context, restaurantID string, onlyAvailable bool) ([]InventoryItem, error)
}
