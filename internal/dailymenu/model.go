package dailymenu

import (
	"time"

	"github.com/keysaw7/MenuMaster-sub000/internal/ingredient"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

const DateLayout = "2006-01-02"

type DailyMenu struct {
	ID             string                `json:"id"`
	RestaurantID   string                `json:"restaurantId"`
	RestaurantName string                `json:"restaurantName,omitempty"`
	Date           string                `json:"date"`
	Starters       []suggestion.MenuItem `json:"starters"`
	Mains          []suggestion.MenuItem `json:"mains"`
	Desserts       []suggestion.MenuItem `json:"desserts"`
	Price          *float64              `json:"price"`
	Weather        *weather.Snapshot     `json:"weather"`
	IsPublished    bool                  `json:"isPublished"`
	PublishedAt    *time.Time            `json:"publishedAt"`
	CardURL        *string               `json:"cardUrl"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// SaveInput is the body of POST /daily-menus.
type SaveInput struct {
	RestaurantID string                `json:"restaurantId" validate:"required,uuid"`
	Date         string                `json:"date" validate:"required,datetime=2006-01-02"`
	Starters     []suggestion.MenuItem `json:"starters" validate:"required,min=1"`
	Mains        []suggestion.MenuItem `json:"mains" validate:"required,min=1"`
	Desserts     []suggestion.MenuItem `json:"desserts" validate:"required,min=1"`
	Price        *float64              `json:"price" validate:"omitempty,gte=0"`
	Weather      *weather.Snapshot     `json:"weather"`
	IsPublished  bool                  `json:"isPublished"`
}

// UpdateInput replaces the content of a draft.
type UpdateInput struct {
	Date     string                `json:"date" validate:"required,datetime=2006-01-02"`
	Starters []suggestion.MenuItem `json:"starters" validate:"required,min=1"`
	Mains    []suggestion.MenuItem `json:"mains" validate:"required,min=1"`
	Desserts []suggestion.MenuItem `json:"desserts" validate:"required,min=1"`
	Price    *float64              `json:"price" validate:"omitempty,gte=0"`
	Weather  *weather.Snapshot     `json:"weather"`
}

type GenerateInput struct {
	WeatherCondition    string             `json:"weatherCondition"`
	Temperature         *int               `json:"temperature"`
	Date                string             `json:"date"`
	Ingredients         []ingredient.Input `json:"ingredients"`
	Cuisine             []string           `json:"cuisine"`
	DietaryRestrictions []string           `json:"dietaryRestrictions"`
	City                string             `json:"city"`
	RestaurantID        string             `json:"restaurantId"`
}

type GenerateOutput struct {
	suggestion.Result
	WeatherCondition string `json:"weatherCondition"`
	Generator        string `json:"generator"`
}
