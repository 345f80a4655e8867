package ingredient

import "time"

const DefaultCategory = "autre"

type DietaryRestrictions struct {
	Vegetarian  bool `json:"vegetarian"`
	Vegan       bool `json:"vegan"`
	GlutenFree  bool `json:"glutenFree"`
	LactoseFree bool `json:"lactoseFree"`
	Halal       bool `json:"halal"`
	Kosher      bool `json:"kosher"`
}

// Ingredient is a catalog entry. Quantity and Unit are only set when the
// ingredient comes from a restaurant's stock or an explicit list.
type Ingredient struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Category            string              `json:"category"`
	IsAllergen          bool                `json:"isAllergen"`
	AllergenType        *string             `json:"allergenType,omitempty"`
	DietaryRestrictions DietaryRestrictions `json:"dietaryRestrictions"`
	Quantity            float64             `json:"quantity,omitempty"`
	Unit                string              `json:"unit,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// InventoryItem is one restaurant's stock of a catalog ingredient.
type InventoryItem struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurantId"`
	IngredientID string     `json:"ingredientId"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	IsAvailable  bool       `json:"isAvailable"`
	Ingredient   Ingredient `json:"ingredient"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Input is the loose shape callers send: only the name is required.
type Input struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

type AddInput struct {
	Name                string              `json:"name"`
	Category            string              `json:"category"`
	Quantity            float64             `json:"quantity"`
	Unit                string              `json:"unit"`
	IsAllergen          bool                `json:"isAllergen"`
	AllergenType        *string             `json:"allergenType"`
	DietaryRestrictions DietaryRestrictions `json:"dietaryRestrictions"`
}
