package restaurant

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

type memoryRow struct {
	id          string
	name        string
	description string
	blobs       blobs
	createdAt   time.Time
	updatedAt   time.Time
}

// InMemoryRepository stores the same JSON projection the Postgres
// repository writes, so reads go through the same decoding.
type InMemoryRepository struct {
	mu       sync.RWMutex
	rows     map[string]*memoryRow
	members  map[string]map[string]string // restaurantID -> userID -> role
	onDelete []func(restaurantID string)
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		rows:    make(map[string]*memoryRow),
		members: make(map[string]map[string]string),
	}
}

// OnDelete registers a hook run for every deleted restaurant. Tests use it
// to cascade into other in-memory stores.
func (r *InMemoryRepository) OnDelete(fn func(restaurantID string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDelete = append(r.onDelete, fn)
}

func (r *InMemoryRepository) Create(_ context.Context, restaurant *Restaurant, ownerID string) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	b, err := encodeBlobs(restaurant)
	if err != nil {
		return apperr.Validation(err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[restaurant.ID]; exists {
		return apperr.Conflict("restaurant already exists")
	}

	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now
	restaurant.Role = RoleOwner

	r.rows[restaurant.ID] = &memoryRow{
		id:          restaurant.ID,
		name:        restaurant.Name,
		description: restaurant.Description,
		blobs:       b,
		createdAt:   now,
		updatedAt:   now,
	}
	r.members[restaurant.ID] = map[string]string{ownerID: RoleOwner}
	return nil
}

// AddMember links a user to a restaurant with the given role.
func (r *InMemoryRepository) AddMember(restaurantID, userID, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.members[restaurantID] == nil {
		r.members[restaurantID] = make(map[string]string)
	}
	r.members[restaurantID][userID] = role
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}
	return row.toRestaurant("")
}

func (r *InMemoryRepository) ListByMember(_ context.Context, userID string) ([]*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*Restaurant{}
	for id, users := range r.members {
		role, ok := users[userID]
		if !ok {
			continue
		}
		row, ok := r.rows[id]
		if !ok {
			continue
		}
		res, err := row.toRestaurant(role)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.rows[id]; !ok {
		r.mu.Unlock()
		return apperr.NotFound("restaurant not found")
	}
	delete(r.rows, id)
	delete(r.members, id)
	hooks := append([]func(string){}, r.onDelete...)
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
	return nil
}

func (r *InMemoryRepository) IsMember(_ context.Context, restaurantID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[restaurantID][userID]
	return ok, nil
}

func (row *memoryRow) toRestaurant(role string) (*Restaurant, error) {
	res := &Restaurant{
		ID:          row.id,
		Name:        row.name,
		Description: row.description,
		Role:        role,
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
	}
	if err := decodeBlobs(row.blobs, res); err != nil {
		return nil, apperr.Persistence("decode restaurant", err)
	}
	return res, nil
}
