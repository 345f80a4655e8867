package menu

import (
	"context"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

// Extractor projects a restaurant's regular menu into generation context.
type Extractor struct {
	repo Repository
}

func NewExtractor(repo Repository) *Extractor {
	return &Extractor{repo: repo}
}

// ExtractContext returns an empty context when the restaurant has no active
// regular menu.
func (e *Extractor) ExtractContext(ctx context.Context, restaurantID string) (Context, error) {
	empty := Context{Categories: []ContextCategory{}}
	if restaurantID == "" {
		return empty, nil
	}

	m, err := e.repo.LatestActive(ctx, restaurantID, TypeRegular)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return empty, nil
		}
		return empty, err
	}
	return Flatten(m), nil
}

// Flatten never returns nil slices, whatever is missing in m.
func Flatten(m *Menu) Context {
	out := Context{Categories: []ContextCategory{}}
	if m == nil {
		return out
	}

	for _, cat := range m.Categories {
		cc := ContextCategory{Name: cat.Name, Items: []ContextItem{}}
		for _, item := range cat.Items {
			ingredients := make([]string, 0, len(item.Ingredients))
			ingredients = append(ingredients, item.Ingredients...)
			cc.Items = append(cc.Items, ContextItem{
				Name:        item.Name,
				Description: item.Description,
				Ingredients: ingredients,
			})
		}
		out.Categories = append(out.Categories, cc)
	}
	return out
}
