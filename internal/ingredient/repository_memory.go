package ingredient

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

type InMemoryRepository struct {
	mu        sync.RWMutex
	catalog   map[string]*Ingredient // lower(name) -> entry
	inventory map[string]*InventoryItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		catalog:   make(map[string]*Ingredient),
		inventory: make(map[string]*InventoryItem),
	}
}

func (r *InMemoryRepository) FindOrCreate(_ context.Context, in *Ingredient) (*Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(in.Name)
	if existing, ok := r.catalog[key]; ok {
		cp := *existing
		return &cp, nil
	}

	now := time.Now()
	entry := *in
	entry.ID = uuid.New().String()
	entry.Quantity = 0
	entry.Unit = ""
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.catalog[key] = &entry

	cp := entry
	return &cp, nil
}

func (r *InMemoryRepository) AddToInventory(_ context.Context, item *InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ing := r.byID(item.IngredientID)
	if ing == nil {
		return apperr.NotFound("ingredient not found")
	}

	now := time.Now()
	for _, existing := range r.inventory {
		if existing.RestaurantID == item.RestaurantID && existing.IngredientID == item.IngredientID {
			existing.Quantity = item.Quantity
			existing.Unit = item.Unit
			existing.IsAvailable = true
			existing.UpdatedAt = now
			*item = *existing
			item.Ingredient = *ing
			return nil
		}
	}

	item.ID = uuid.New().String()
	item.IsAvailable = true
	item.UpdatedAt = now
	item.Ingredient = *ing
	stored := *item
	r.inventory[item.ID] = &stored
	return nil
}

func (r *InMemoryRepository) SetAvailability(_ context.Context, restaurantID, inventoryID string, available bool) (*InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.inventory[inventoryID]
	if !ok || item.RestaurantID != restaurantID {
		return nil, apperr.NotFound("inventory item not found")
	}
	item.IsAvailable = available
	item.UpdatedAt = time.Now()

	out := *item
	if ing := r.byID(item.IngredientID); ing != nil {
		out.Ingredient = *ing
	}
	return &out, nil
}

func (r *InMemoryRepository) DeleteInventoryItem(_ context.Context, restaurantID, inventoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.inventory[inventoryID]
	if !ok || item.RestaurantID != restaurantID {
		return apperr.NotFound("inventory item not found")
	}
	delete(r.inventory, inventoryID)
	return nil
}

func (r *InMemoryRepository) DeleteAllForRestaurant(_ context.Context, restaurantID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, item := range r.inventory {
		if item.RestaurantID == restaurantID {
			delete(r.inventory, id)
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) ListInventory(_ context.Context, restaurantID string, onlyAvailable bool) ([]InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []InventoryItem{}
	for _, item := range r.inventory {
		if item.RestaurantID != restaurantID {
			continue
		}
		if onlyAvailable && !item.IsAvailable {
			continue
		}
		cp := *item
		if ing := r.byID(item.IngredientID); ing != nil {
			cp.Ingredient = *ing
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ingredient.Category != out[j].Ingredient.Category {
			return out[i].Ingredient.Category < out[j].Ingredient.Category
		}
		return out[i].Ingredient.Name < out[j].Ingredient.Name
	})
	return out, nil
}

// byID expects r.mu to be held.
func (r *InMemoryRepository) byID(id string) *Ingredient {
	for _, ing := range r.catalog {
		if ing.ID == id {
			return ing
		}
	}
	return nil
}
