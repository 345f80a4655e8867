package dailymenu

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/suggestion"
	"github.com/keysaw7/MenuMaster-sub000/internal/weather"
)

const (
	msgNotFound  = "daily menu not found"
	msgDuplicate = "a daily menu already exists for this restaurant and date"
	msgPublished = "published daily menus cannot be modified"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectDailyMenu = `
	SELECT d.id, d.restaurant_id, r.name, d.date,
	       d.starters, d.mains, d.desserts, d.price, d.weather,
	       d.is_published, d.published_at, d.card_url,
	       d.created_at, d.updated_at
	FROM daily_menus d
	JOIN restaurants r ON r.id = d.restaurant_id
`

// --------------------------------------------------
// CREATE
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, m *DailyMenu) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	c, err := encodeContent(m)
	if err != nil {
		return apperr.Validation("invalid daily menu content")
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO daily_menus (
			id, restaurant_id, date, starters, mains, desserts, price, weather, is_published
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)
		RETURNING created_at, updated_at
	`,
		m.ID, m.RestaurantID, m.Date, c.starters, c.mains, c.desserts, m.Price, c.weather,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return apperr.FromDB(err, "restaurant not found", msgDuplicate)
	}

	m.IsPublished = false
	return nil
}

// --------------------------------------------------
// GET BY ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*DailyMenu, error) {
	row := r.db.QueryRow(ctx, selectDailyMenu+` WHERE d.id = $1`, id)
	m, err := scanDailyMenu(row)
	if err != nil {
		return nil, apperr.FromDB(err, msgNotFound, "")
	}
	return m, nil
}

// --------------------------------------------------
// UPDATE DRAFT CONTENT
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, m *DailyMenu) error {
	c, err := encodeContent(m)
	if err != nil {
		return apperr.Validation("invalid daily menu content")
	}

	err = r.db.QueryRow(ctx, `
		UPDATE daily_menus
		SET date = $2,
		    starters = $3,
		    mains = $4,
		    desserts = $5,
		    price = $6,
		    weather = $7,
		    updated_at = now()
		WHERE id = $1
		  AND is_published = false
		RETURNING updated_at
	`, m.ID, m.Date, c.starters, c.mains, c.desserts, m.Price, c.weather).Scan(&m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// published since it was read
		return apperr.Conflict(msgPublished)
	}
	if err != nil {
		return apperr.FromDB(err, msgNotFound, msgDuplicate)
	}
	return nil
}

// --------------------------------------------------
// PUBLISH
// --------------------------------------------------
func (r *PostgresRepository) MarkPublished(ctx context.Context, id string, at time.Time, cardURL *string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE daily_menus
		SET is_published = true,
		    published_at = $2,
		    card_url = $3,
		    updated_at = now()
		WHERE id = $1
		  AND is_published = false
	`, id, at, cardURL)
	if err != nil {
		return apperr.Persistence("publish daily menu", err)
	}
	return nil
}

// --------------------------------------------------
// DELETE
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM daily_menus WHERE id = $1`, id)
	if err != nil {
		return apperr.Persistence("delete daily menu", err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(msgNotFound)
	}
	return nil
}

// --------------------------------------------------
// LIST FOR USER (all member restaurants)
// --------------------------------------------------
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*DailyMenu, error) {
	rows, err := r.db.Query(ctx, selectDailyMenu+`
		JOIN users_on_restaurants ur ON ur.restaurant_id = d.restaurant_id
		WHERE ur.user_id = $1
		ORDER BY d.date DESC, d.created_at DESC
	`, userID)
	if err != nil {
		return nil, apperr.Persistence("list daily menus", err)
	}

	menus, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*DailyMenu, error) {
		return scanDailyMenu(row)
	})
	if err != nil {
		return nil, apperr.Persistence("scan daily menus", err)
	}
	return menus, nil
}

type content struct {
	starters []byte
	mains    []byte
	desserts []byte
	weather  []byte
}

func encodeContent(m *DailyMenu) (content, error) {
	var (
		c   content
		err error
	)
	if c.starters, err = json.Marshal(nonNil(m.Starters)); err != nil {
		return c, err
	}
	if c.mains, err = json.Marshal(nonNil(m.Mains)); err != nil {
		return c, err
	}
	if c.desserts, err = json.Marshal(nonNil(m.Desserts)); err != nil {
		return c, err
	}
	if m.Weather != nil {
		if c.weather, err = json.Marshal(m.Weather); err != nil {
			return c, err
		}
	}
	return c, nil
}

func scanDailyMenu(row pgx.Row) (*DailyMenu, error) {
	var (
		m                         DailyMenu
		starters, mains, desserts []byte
		rawWeather                []byte
	)
	err := row.Scan(
		&m.ID, &m.RestaurantID, &m.RestaurantName, &m.Date,
		&starters, &mains, &desserts, &m.Price, &rawWeather,
		&m.IsPublished, &m.PublishedAt, &m.CardURL,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		raw []byte
		dst *[]suggestion.MenuItem
	}{
		{starters, &m.Starters},
		{mains, &m.Mains},
		{desserts, &m.Desserts},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, err
		}
		*f.dst = nonNil(*f.dst)
	}

	if len(rawWeather) > 0 {
		var w weather.Snapshot
		if err := json.Unmarshal(rawWeather, &w); err != nil {
			return nil, err
		}
		m.Weather = &w
	}
	return &m, nil
}

func nonNil(items []suggestion.MenuItem) []suggestion.MenuItem {
	if items == nil {
		return []suggestion.MenuItem{}
	}
	return items
}
