package llm

import (
	"fmt"
	"strings"

	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
)

const SystemPrompt = `Tu es un conseiller culinaire expert pour restaurants.
Tu composes des menus du jour adaptés à la météo, à la saison et aux ingrédients disponibles.

Rules:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.`

// BuildMenuPrompt renders the user message for one generation.
func BuildMenuPrompt(req suggestion.Request) string {
	var b strings.Builder

	w := req.Weather
	fmt.Fprintf(&b, "Génère un menu du jour pour le %s", orDash(req.Date))
	if req.City != "" {
		fmt.Fprintf(&b, " à %s", req.City)
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "Météo : %s (%s), %d°C\n", w.Category, w.Label, w.Temperature)
	if req.RestaurantName != "" {
		fmt.Fprintf(&b, "Restaurant : %s\n", req.RestaurantName)
	}
	fmt.Fprintf(&b, "Cuisine : %s\n", orDash(strings.Join(req.Cuisine, ", ")))
	fmt.Fprintf(&b, "Restrictions alimentaires : %s\n", orDash(strings.Join(req.DietaryRestrictions, ", ")))

	b.WriteString("\nIngrédients disponibles :\n")
	if len(req.Ingredients) == 0 {
		b.WriteString("- aucun inventaire fourni\n")
	}
	for _, ing := range req.Ingredients {
		line := fmt.Sprintf("- %s (%s)", ing.Name, ing.Category)
		if ing.Quantity > 0 {
			line += fmt.Sprintf(" %g %s", ing.Quantity, ing.Unit)
		}
		b.WriteString(strings.TrimSpace(line) + "\n")
	}

	if !req.FixedMenu.Empty() {
		b.WriteString("\nCarte habituelle du restaurant (pour le style, ne pas recopier) :\n")
		for _, cat := range req.FixedMenu.Categories {
			if len(cat.Items) == 0 {
				continue
			}
			fmt.Fprintf(&b, "%s :\n", cat.Name)
			for _, item := range cat.Items {
				fmt.Fprintf(&b, "- %s", item.Name)
				if len(item.Ingredients) > 0 {
					fmt.Fprintf(&b, " [%s]", strings.Join(item.Ingredients, ", "))
				}
				b.WriteString("\n")
			}
		}
	}

	fmt.Fprintf(&b, `
Propose exactement %d entrées, %d plats et %d dessert.

Required JSON schema:
{
  "starters": [{"name": "string", "description": "string", "price": number, "ingredients": ["string"], "allergens": ["string"]}],
  "mains":    [{"name": "string", "description": "string", "price": number, "ingredients": ["string"], "allergens": ["string"]}],
  "desserts": [{"name": "string", "description": "string", "price": number, "ingredients": ["string"], "allergens": ["string"]}],
  "price": number
}
`, suggestion.StarterCount, suggestion.MainCount, suggestion.DessertCount)

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
