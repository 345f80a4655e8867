package llm

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
)

var (
	ErrNotJSON   = errors.New("model did not return valid JSON")
	ErrEmptyMenu = errors.New("model returned an empty menu")
)

// ParseMenu turns the model output into a generated menu. Markdown fences
// and chatter around the JSON object are tolerated.
func ParseMenu(raw string) (*suggestion.Result, error) {
	jsonText := extractJSON(raw)
	if jsonText == "" || !json.Valid([]byte(jsonText)) {
		return nil, ErrNotJSON
	}

	var parsed menuResponse
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, ErrNotJSON
	}

	res := &suggestion.Result{
		Starters: convert(parsed.Starters, suggestion.Starter),
		Mains:    convert(parsed.Mains, suggestion.Main),
		Desserts: convert(parsed.Desserts, suggestion.Dessert),
	}
	if len(res.Starters) == 0 || len(res.Mains) == 0 || len(res.Desserts) == 0 {
		return nil, ErrEmptyMenu
	}

	if parsed.Price != nil && *parsed.Price > 0 {
		res.Price = math.Round(*parsed.Price)
	} else {
		// one dish per course
		res.Price = math.Round(res.Starters[0].Price + res.Mains[0].Price + res.Desserts[0].Price)
	}
	return res, nil
}

func convert(items []menuItem, course suggestion.Course) []suggestion.MenuItem {
	out := make([]suggestion.MenuItem, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}

		refs := make([]suggestion.IngredientRef, 0, len(it.Ingredients))
		for _, ing := range it.Ingredients {
			if ing = strings.TrimSpace(ing); ing != "" {
				refs = append(refs, suggestion.IngredientRef{Name: ing})
			}
		}
		allergens := it.Allergens
		if allergens == nil {
			allergens = []string{}
		}

		var price float64
		if it.Price != nil && *it.Price > 0 {
			price = *it.Price
		}

		out = append(out, suggestion.MenuItem{
			ID:          uuid.New().String(),
			Name:        name,
			Description: strings.TrimSpace(it.Description),
			Price:       price,
			Ingredients: refs,
			Allergens:   allergens,
			Category:    course,
			AIGenerated: true,
		})
	}
	return out
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
