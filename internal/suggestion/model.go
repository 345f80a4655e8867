package suggestion

import (
	"context"

	"github.com/keysaw7/MenuMaster-sub000/internal/ingredient"
	"github.com/keysaw7/MenuMaster-sub000/internal/menu"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

type Course string

const (
	Starter Course = "starter"
	Main    Course = "main"
	Dessert Course = "dessert"
)

// Counts per course in a generated daily menu.
const (
	StarterCount = 2
	MainCount    = 2
	DessertCount = 1
)

type IngredientRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Ingredients []IngredientRef `json:"ingredients"`
	Allergens   []string        `json:"allergens"`
	Category    Course          `json:"category"`
	AIGenerated bool            `json:"aiGenerated"`
}

// Request is everything a generator may take into account.
type Request struct {
	Weather             weather.Snapshot
	Cuisine             []string
	Ingredients         []ingredient.Ingredient
	DietaryRestrictions []string
	FixedMenu           menu.Context
	RestaurantName      string
	City                string
	Date                string
}

type Result struct {
	Starters []MenuItem `json:"starters"`
	Mains    []MenuItem `json:"mains"`
	Desserts []MenuItem `json:"desserts"`
	Price    float64    `json:"price"`
}

// Generator produces a daily menu. The rule engine and the LLM-backed
// generator both implement it.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Name() string
}
