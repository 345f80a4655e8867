package menu

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	menus []*Menu
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Put stores m as-is. Tests use it to seed menus with missing fields.
func (r *InMemoryRepository) Put(m *Menu) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now()
	}
	r.menus = append(r.menus, m)
}

func (r *InMemoryRepository) LatestActive(_ context.Context, restaurantID, menuType string) (*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *Menu
	for _, m := range r.menus {
		if m.RestaurantID != restaurantID || m.Type != menuType || !m.IsActive {
			continue
		}
		if latest == nil || m.UpdatedAt.After(latest.UpdatedAt) {
			latest = m
		}
	}
	if latest == nil {
		return nil, apperr.NotFound("no active menu")
	}
	cp := *latest
	return &cp, nil
}

func (r *InMemoryRepository) Upsert(_ context.Context, m *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, existing := range r.menus {
		if existing.RestaurantID == m.RestaurantID && existing.Type == m.Type && existing.IsActive {
			existing.Name = m.Name
			existing.Categories = m.Categories
			existing.UpdatedAt = now
			*m = *existing
			return nil
		}
	}

	m.ID = uuid.New().String()
	m.IsActive = true
	m.CreatedAt = now
	m.UpdatedAt = now
	stored := *m
	r.menus = append(r.menus, &stored)
	return nil
}
