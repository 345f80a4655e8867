package menu

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LATEST ACTIVE MENU OF A TYPE
// --------------------------------------------------
func (r *PostgresRepository) LatestActive(ctx context.Context, restaurantID, menuType string) (*Menu, error) {
	var (
		m   Menu
		raw []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, name, type, is_active, categories, created_at, updated_at
		FROM menus
		WHERE restaurant_id = $1
		  AND type = $2
		  AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
	`, restaurantID, menuType).Scan(
		&m.ID, &m.RestaurantID, &m.Name, &m.Type, &m.IsActive, &raw, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromDB(err, "no active menu", "")
	}

	if m.Categories, err = decodeCategories(raw); err != nil {
		return nil, apperr.Persistence("decode menu categories", err)
	}
	return &m, nil
}

// --------------------------------------------------
// UPSERT ACTIVE MENU (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, m *Menu) error {
	data, err := json.Marshal(m.Categories)
	if err != nil {
		return apperr.Validation("invalid menu categories")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Persistence("begin tx", err)
	}
	defer tx.Rollback(ctx)

	var existingID string
	err = tx.QueryRow(ctx, `
		SELECT id
		FROM menus
		WHERE restaurant_id = $1
		  AND type = $2
		  AND is_active = true
		ORDER BY updated_at DESC
		LIMIT 1
		FOR UPDATE
	`, m.RestaurantID, m.Type).Scan(&existingID)

	switch {
	case err == nil:
		m.ID = existingID
		err = tx.QueryRow(ctx, `
			UPDATE menus
			SET name = $1,
			    categories = $2,
			    updated_at = now()
			WHERE id = $3
			RETURNING created_at, updated_at
		`, m.Name, data, m.ID).Scan(&m.CreatedAt, &m.UpdatedAt)

	case errors.Is(err, pgx.ErrNoRows):
		m.ID = uuid.New().String()
		err = tx.QueryRow(ctx, `
			INSERT INTO menus (id, restaurant_id, name, type, is_active, categories)
			VALUES ($1, $2, $3, $4, true, $5)
			RETURNING created_at, updated_at
		`, m.ID, m.RestaurantID, m.Name, m.Type, data).Scan(&m.CreatedAt, &m.UpdatedAt)
	}
	if err != nil {
		return apperr.FromDB(err, "restaurant not found", "menu already exists")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Persistence("commit menu", err)
	}

	m.IsActive = true
	return nil
}

func decodeCategories(raw []byte) ([]Category, error) {
	var categories []Category
	if len(raw) == 0 {
		return []Category{}, nil
	}
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
