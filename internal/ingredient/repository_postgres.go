package ingredient

import (
	"context"
	"encoding/json"

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
// FIND OR CREATE (race-safe via unique lower(name))
// --------------------------------------------------
func (r *PostgresRepository) FindOrCreate(ctx context.Context, in *Ingredient) (*Ingredient, error) {
	restrictions, err := json.Marshal(in.DietaryRestrictions)
	if err != nil {
		return nil, apperr.Validation("invalid dietary restrictions")
	}

	var (
		out Ingredient
		raw []byte
	)
	err = r.db.QueryRow(ctx, `
		INSERT INTO ingredients (
			id, name, category, is_allergen, allergen_type, dietary_restrictions
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ((lower(name)))
		DO UPDATE SET name = ingredients.name
		RETURNING id, name, category, is_allergen, allergen_type,
		          dietary_restrictions, created_at, updated_at
	`,
		uuid.New().String(), in.Name, in.Category,
		in.IsAllergen, in.AllergenType, restrictions,
	).Scan(
		&out.ID, &out.Name, &out.Category, &out.IsAllergen, &out.AllergenType,
		&raw, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.FromDB(err, "ingredient not found", "ingredient already exists")
	}
	if err := json.Unmarshal(raw, &out.DietaryRestrictions); err != nil {
		return nil, apperr.Persistence("decode dietary restrictions", err)
	}
	return &out, nil
}

// --------------------------------------------------
// INVENTORY UPSERT
// --------------------------------------------------
func (r *PostgresRepository) AddToInventory(ctx context.Context, item *InventoryItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO ingredient_inventory (
			id, restaurant_id, ingredient_id, quantity, unit, is_available
		)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (restaurant_id, ingredient_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              unit = EXCLUDED.unit,
		              is_available = true,
		              updated_at = now()
		RETURNING id, is_available, updated_at
	`,
		uuid.New().String(), item.RestaurantID, item.IngredientID, item.Quantity, item.Unit,
	).Scan(&item.ID, &item.IsAvailable, &item.UpdatedAt)

	return apperr.FromDB(err, "restaurant not found", "ingredient already in inventory")
}

func (r *PostgresRepository) SetAvailability(
	ctx context.Context,
	restaurantID string,
	inventoryID string,
	available bool,
) (*InventoryItem, error) {

	cmd, err := r.db.Exec(ctx, `
		UPDATE ingredient_inventory
		SET is_available = $1,
		    updated_at = now()
		WHERE id = $2
		  AND restaurant_id = $3
	`, available, inventoryID, restaurantID)
	if err != nil {
		return nil, apperr.Persistence("update availability", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, apperr.NotFound("inventory item not found")
	}

	items, err := r.query(ctx, `WHERE inv.id = $1`, inventoryID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("inventory item not found")
	}
	return &items[0], nil
}

func (r *PostgresRepository) DeleteInventoryItem(ctx context.Context, restaurantID, inventoryID string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM ingredient_inventory
		WHERE id = $1
		  AND restaurant_id = $2
	`, inventoryID, restaurantID)
	if err != nil {
		return apperr.Persistence("delete inventory item", err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("inventory item not found")
	}
	return nil
}

func (r *PostgresRepository) DeleteAllForRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM ingredient_inventory
		WHERE restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return 0, apperr.Persistence("delete inventory", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *PostgresRepository) ListInventory(ctx context.Context, restaurantID string, onlyAvailable bool) ([]InventoryItem, error) {
	where := `WHERE inv.restaurant_id = $1`
	if onlyAvailable {
		where += ` AND inv.is_available = true`
	}
	return r.query(ctx, where+` ORDER BY i.category, i.name`, restaurantID)
}

func (r *PostgresRepository) query(ctx context.Context, where string, args ...any) ([]InventoryItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT inv.id, inv.restaurant_id, inv.ingredient_id, inv.quantity, inv.unit,
		       inv.is_available, inv.updated_at,
		       i.id, i.name, i.category, i.is_allergen, i.allergen_type,
		       i.dietary_restrictions, i.created_at, i.updated_at
		FROM ingredient_inventory inv
		JOIN ingredients i ON i.id = inv.ingredient_id
		`+where, args...)
	if err != nil {
		return nil, apperr.Persistence("list inventory", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (InventoryItem, error) {
		var (
			item InventoryItem
			raw  []byte
		)
		ing := &item.Ingredient
		err := row.Scan(
			&item.ID, &item.RestaurantID, &item.IngredientID, &item.Quantity, &item.Unit,
			&item.IsAvailable, &item.UpdatedAt,
			&ing.ID, &ing.Name, &ing.Category, &ing.IsAllergen, &ing.AllergenType,
			&raw, &ing.CreatedAt, &ing.UpdatedAt,
		)
		if err != nil {
			return item, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &ing.DietaryRestrictions); err != nil {
				return item, err
			}
		}
		return item, nil
	})
	if err != nil {
		return nil, apperr.Persistence("scan inventory", err)
	}
	return items, nil
}
