package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/keysaw7/MenuMaster-sub000/internal/dailymenu"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

// Card is the customer-facing document of a published daily menu.
type Card struct {
	RestaurantID   string                `json:"restaurantId"`
	RestaurantName string                `json:"restaurantName,omitempty"`
	Date           string                `json:"date"`
	Starters       []suggestion.MenuItem `json:"starters"`
	Mains          []suggestion.MenuItem `json:"mains"`
	Desserts       []suggestion.MenuItem `json:"desserts"`
	Price          *float64              `json:"price,omitempty"`
	Weather        *weather.Snapshot     `json:"weather,omitempty"`
	PublishedAt    *time.Time            `json:"publishedAt,omitempty"`
}

// CardPublisher uploads cards to R2. It implements dailymenu.CardPublisher.
type CardPublisher struct {
	r2 *R2Client
}

func NewCardPublisher(r2 *R2Client) *CardPublisher {
	return &CardPublisher{r2: r2}
}

func CardKey(restaurantID, date string) string {
	return fmt.Sprintf("cards/%s/%s.json", restaurantID, date)
}

func (p *CardPublisher) PublishCard(ctx context.Context, m *dailymenu.DailyMenu) (string, error) {
	body, err := json.Marshal(Card{
		RestaurantID:   m.RestaurantID,
		RestaurantName: m.RestaurantName,
		Date:           m.Date,
		Starters:       m.Starters,
		Mains:          m.Mains,
		Desserts:       m.Desserts,
		Price:          m.Price,
		Weather:        m.Weather,
		PublishedAt:    m.PublishedAt,
	})
	if err != nil {
		return "", fmt.Errorf("encode card: %w", err)
	}

	return p.r2.Upload(ctx, CardKey(m.RestaurantID, m.Date), "application/json", bytes.NewReader(body))
}
