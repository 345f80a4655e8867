package ingredient

import (
	"context"
	"strings"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/core"
)

type Service struct {
	repo    Repository
	members core.MembershipChecker
}

func NewService(repo Repository, members core.MembershipChecker) *Service {
	return &Service{repo: repo, members: members}
}

func (s *Service) ListInventory(ctx context.Context, userID, restaurantID string) ([]InventoryItem, error) {
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListInventory(ctx, restaurantID, false)
}

// AddToInventory finds or creates the catalog entry by name, then stocks it
// for the restaurant.
func (s *Service) AddToInventory(ctx context.Context, userID, restaurantID string, in AddInput) (*InventoryItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if in.Quantity < 0 {
		return nil, apperr.Validation("quantity must not be negative")
	}
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	ing, err := s.repo.FindOrCreate(ctx, &Ingredient{
		Name:                name,
		Category:            category,
		IsAllergen:          in.IsAllergen,
		AllergenType:        in.AllergenType,
		DietaryRestrictions: in.DietaryRestrictions,
	})
	if err != nil {
		return nil, err
	}

	item := &InventoryItem{
		RestaurantID: restaurantID,
		IngredientID: ing.ID,
		Quantity:     in.Quantity,
		Unit:         strings.TrimSpace(in.Unit),
	}
	if err := s.repo.AddToInventory(ctx, item); err != nil {
		return nil, err
	}
	item.Ingredient = *ing
	return item, nil
}

func (s *Service) SetAvailability(ctx context.Context, userID, restaurantID, inventoryID string, available bool) (*InventoryItem, error) {
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.SetAvailability(ctx, restaurantID, inventoryID, available)
}

// DeleteInventoryItem hard-deletes one stock row. The catalog entry stays.
func (s *Service) DeleteInventoryItem(ctx context.Context, userID, restaurantID, inventoryID string) error {
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return err
	}
	return s.repo.DeleteInventoryItem(ctx, restaurantID, inventoryID)
}

// DeleteAllForRestaurant hard-deletes every stock row of the restaurant.
func (s *Service) DeleteAllForRestaurant(ctx context.Context, userID, restaurantID string) (int64, error) {
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return 0, err
	}
	return s.repo.DeleteAllForRestaurant(ctx, restaurantID)
}
