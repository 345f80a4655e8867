package dailymenu

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/restaurant"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
)

// RestaurantDirectory provides the joins the in-memory store cannot do
// itself. restaurant.Repository satisfies it.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id string) (*restaurant.Restaurant, error)
	ListByMember(ctx context.Context, userID string) ([]*restaurant.Restaurant, error)
}

type InMemoryRepository struct {
	mu          sync.RWMutex
	menus       map[string]*DailyMenu
	restaurants RestaurantDirectory
	writes      int
}

func NewInMemoryRepository(restaurants RestaurantDirectory) *InMemoryRepository {
	return &InMemoryRepository{
		menus:       make(map[string]*DailyMenu),
		restaurants: restaurants,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, m *DailyMenu) error {
	if _, err := r.restaurants.GetByID(ctx, m.RestaurantID); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.duplicate(m) {
		return apperr.Conflict(msgDuplicate)
	}

	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.IsPublished = false
	r.menus[m.ID] = clone(m)
	r.writes++
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*DailyMenu, error) {
	r.mu.RLock()
	stored, ok := r.menus[id]
	var m *DailyMenu
	if ok {
		m = clone(stored)
	}
	r.mu.RUnlock()

	if !ok {
		return nil, apperr.NotFound(msgNotFound)
	}
	r.attachName(ctx, m)
	return m, nil
}

func (r *InMemoryRepository) Update(_ context.Context, m *DailyMenu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.menus[m.ID]
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	if stored.IsPublished {
		return apperr.Conflict(msgPublished)
	}
	if r.duplicate(m) {
		return apperr.Conflict(msgDuplicate)
	}

	stored.Date = m.Date
	stored.Starters = m.Starters
	stored.Mains = m.Mains
	stored.Desserts = m.Desserts
	stored.Price = m.Price
	stored.Weather = m.Weather
	stored.UpdatedAt = time.Now()
	m.UpdatedAt = stored.UpdatedAt
	r.writes++
	return nil
}

func (r *InMemoryRepository) MarkPublished(_ context.Context, id string, at time.Time, cardURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.menus[id]
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	if stored.IsPublished {
		return nil
	}
	stored.IsPublished = true
	stored.PublishedAt = &at
	stored.CardURL = cardURL
	stored.UpdatedAt = time.Now()
	r.writes++
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menus[id]; !ok {
		return apperr.NotFound(msgNotFound)
	}
	delete(r.menus, id)
	r.writes++
	return nil
}

// DeleteForRestaurant mirrors the ON DELETE CASCADE of the real schema.
func (r *InMemoryRepository) DeleteForRestaurant(restaurantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.menus {
		if m.RestaurantID == restaurantID {
			delete(r.menus, id)
		}
	}
}

func (r *InMemoryRepository) ListForUser(ctx context.Context, userID string) ([]*DailyMenu, error) {
	restaurants, err := r.restaurants.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(restaurants))
	for _, res := range restaurants {
		names[res.ID] = res.Name
	}

	r.mu.RLock()
	out := []*DailyMenu{}
	for _, m := range r.menus {
		name, ok := names[m.RestaurantID]
		if !ok {
			continue
		}
		c := clone(m)
		c.RestaurantName = name
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Writes counts successful mutations.
func (r *InMemoryRepository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}

// duplicate expects r.mu to be held.
func (r *InMemoryRepository) duplicate(m *DailyMenu) bool {
	for id, other := range r.menus {
		if id != m.ID && other.RestaurantID == m.RestaurantID && other.Date == m.Date {
			return true
		}
	}
	return false
}

func (r *InMemoryRepository) attachName(ctx context.Context, m *DailyMenu) {
	if res, err := r.restaurants.GetByID(ctx, m.RestaurantID); err == nil {
		m.RestaurantName = res.Name
	}
}

func clone(m *DailyMenu) *DailyMenu {
	c := *m
	c.Starters = append([]suggestion.MenuItem{}, m.Starters...)
	c.Mains = append([]suggestion.MenuItem{}, m.Mains...)
	c.Desserts = append([]suggestion.MenuItem{}, m.Desserts...)
	return &c
}
