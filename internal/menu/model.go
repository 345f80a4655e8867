package menu

import "time"

const TypeRegular = "regular"

// Menu is a restaurant's standing menu.
type Menu struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurantId"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	IsActive     bool       `json:"isActive"`
	Categories   []Category `json:"categories"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Ingredients []string `json:"ingredients"`
}

// Context is the flattened menu handed to generators.
type Context struct {
	Categories []ContextCategory `json:"categories"`
}

type ContextCategory struct {
	Name  string        `json:"name"`
	Items []ContextItem `json:"items"`
}

type ContextItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
}

// Empty reports whether the context carries no dishes at all.
func (c Context) Empty() bool {
	for _, cat := range c.Categories {
		if len(cat.Items) > 0 {
			return false
		}
	}
	return true
}

type UpsertInput struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Categories []Category `json:"categories"`
}
