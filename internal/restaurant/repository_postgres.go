package restaurant

import (
	"context"

	"github.com/google/uuid"
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
// Create restaurant + OWNER membership (one tx)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant, ownerID string) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}

	b, err := encodeBlobs(restaurant)
	if err != nil {
		return apperr.Validation(err.Error())
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Persistence("begin tx", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO restaurants (
			id, name, description, cuisine,
			address, contact, hours, settings, features
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		restaurant.ID, restaurant.Name, restaurant.Description, b.cuisine,
		b.address, b.contact, b.hours, b.settings, b.features,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)
	if err != nil {
		return apperr.FromDB(err, "restaurant not found", "restaurant already exists")
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO users_on_restaurants (user_id, restaurant_id, role)
		VALUES ($1, $2, $3)
	`, ownerID, restaurant.ID, RoleOwner); err != nil {
		return apperr.FromDB(err, "user not found", "membership already exists")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Persistence("commit restaurant", err)
	}

	restaurant.Role = RoleOwner
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	var (
		res Restaurant
		b   blobs
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, cuisine,
		       address, contact, hours, settings, features,
		       created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(
		&res.ID, &res.Name, &res.Description, &b.cuisine,
		&b.address, &b.contact, &b.hours, &b.settings, &b.features,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromDB(err, "restaurant not found", "")
	}
	if err := decodeBlobs(b, &res); err != nil {
		return nil, apperr.Persistence("decode restaurant", err)
	}
	return &res, nil
}

// --------------------------------------------------
// List restaurants the user is linked to
// --------------------------------------------------
func (r *PostgresRepository) ListByMember(ctx context.Context, userID string) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.name, r.description, r.cuisine,
		       r.address, r.contact, r.hours, r.settings, r.features,
		       r.created_at, r.updated_at, ur.role
		FROM restaurants r
		JOIN users_on_restaurants ur ON ur.restaurant_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, apperr.Persistence("list restaurants", err)
	}
	defer rows.Close()

	restaurants := []*Restaurant{}
	for rows.Next() {
		var (
			res Restaurant
			b   blobs
		)
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Description, &b.cuisine,
			&b.address, &b.contact, &b.hours, &b.settings, &b.features,
			&res.CreatedAt, &res.UpdatedAt, &res.Role,
		); err != nil {
			return nil, apperr.Persistence("scan restaurant", err)
		}
		if err := decodeBlobs(b, &res); err != nil {
			return nil, apperr.Persistence("decode restaurant", err)
		}
		restaurants = append(restaurants, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list restaurants", err)
	}

	return restaurants, nil
}

// --------------------------------------------------
// Delete with explicit cascade (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Persistence("begin tx", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{
		`DELETE FROM daily_menus WHERE restaurant_id = $1`,
		`DELETE FROM ingredient_inventory WHERE restaurant_id = $1`,
		`DELETE FROM menus WHERE restaurant_id = $1`,
		`DELETE FROM users_on_restaurants WHERE restaurant_id = $1`,
	} {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return apperr.Persistence("delete restaurant children", err)
		}
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return apperr.Persistence("delete restaurant", err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("restaurant not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Persistence("commit delete", err)
	}
	return nil
}

// --------------------------------------------------
// Membership check (SECURITY)
// --------------------------------------------------
func (r *PostgresRepository) IsMember(ctx context.Context, restaurantID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM users_on_restaurants
			WHERE restaurant_id = $1
			  AND user_id = $2
		)
	`, restaurantID, userID).Scan(&exists)
	if err != nil {
		return false, apperr.Persistence("check membership", err)
	}
	return exists, nil
}
