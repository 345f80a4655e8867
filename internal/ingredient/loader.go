package ingredient

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Loader resolves the ingredients a menu generation may draw on.
type Loader struct {
	repo Repository
	now  func() time.Time
}

func NewLoader(repo Repository) *Loader {
	return &Loader{repo: repo, now: time.Now}
}

// LoadContext returns the explicit list when one is given, normalized.
// Otherwise it returns the restaurant's available stock. No restaurant or
// no stock is an empty result, not an error.
func (l *Loader) LoadContext(ctx context.Context, restaurantID string, explicit []Input) ([]Ingredient, error) {
	if normalized := l.normalize(explicit); len(normalized) > 0 {
		return normalized, nil
	}

	if restaurantID == "" {
		return []Ingredient{}, nil
	}

	items, err := l.repo.ListInventory(ctx, restaurantID, true)
	if err != nil {
		return nil, err
	}

	out := make([]Ingredient, 0, len(items))
	for _, item := range items {
		ing := item.Ingredient
		ing.Quantity = item.Quantity
		ing.Unit = item.Unit
		if ing.Category == "" {
			ing.Category = DefaultCategory
		}
		out = append(out, ing)
	}
	return out, nil
}

func (l *Loader) normalize(explicit []Input) []Ingredient {
	now := l.now()
	out := make([]Ingredient, 0, len(explicit))
	for _, in := range explicit {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		category := strings.TrimSpace(in.Category)
		if category == "" {
			category = DefaultCategory
		}
		out = append(out, Ingredient{
			ID:        uuid.New().String(),
			Name:      name,
			Category:  category,
			Quantity:  in.Quantity,
			Unit:      strings.TrimSpace(in.Unit),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
