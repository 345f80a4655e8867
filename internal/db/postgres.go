package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// Connect opens the shared pool, checks it and brings the schema up to date.
func Connect(ctx context.Context, dsn string, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.WithField("max_conns", config.MaxConns).Info("connected to postgres")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Info("schema initialized")
	return pool, nil
}

// initSchema creates every table and index the service needs. Connect runs
// it once per start; every statement is re-runnable.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}

var schema = []string{
	// -------------------------------
	// USERS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// -------------------------------
	// RESTAURANTS + MEMBERSHIP
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		cuisine JSONB NOT NULL DEFAULT '[]',
		address JSONB NOT NULL DEFAULT '{}',
		contact JSONB NOT NULL DEFAULT '{}',
		hours JSONB NOT NULL DEFAULT '{}',
		settings JSONB NOT NULL DEFAULT '{}',
		features JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users_on_restaurants (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, restaurant_id)
	)`,

	// -------------------------------
	// INGREDIENT CATALOG + INVENTORY
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS ingredients (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT 'autre',
		is_allergen BOOLEAN NOT NULL DEFAULT false,
		allergen_type VARCHAR(100),
		dietary_restrictions JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ingredients_name_key ON ingredients (lower(name))`,
	`CREATE TABLE IF NOT EXISTS ingredient_inventory (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		ingredient_id UUID NOT NULL REFERENCES ingredients(id) ON DELETE CASCADE,
		quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit VARCHAR(50) NOT NULL DEFAULT '',
		is_available BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (restaurant_id, ingredient_id)
	)`,

	// -------------------------------
	// FIXED MENUS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS menus (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL DEFAULT 'regular',
		is_active BOOLEAN NOT NULL DEFAULT true,
		categories JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS menus_restaurant_active_idx ON menus (restaurant_id, type, is_active, updated_at DESC)`,

	// -------------------------------
	// DAILY MENUS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS daily_menus (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		date VARCHAR(10) NOT NULL,
		starters JSONB NOT NULL,
		mains JSONB NOT NULL,
		desserts JSONB NOT NULL,
		price DOUBLE PRECISION,
		weather JSONB,
		is_published BOOLEAN NOT NULL DEFAULT false,
		published_at TIMESTAMPTZ,
		card_url VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (restaurant_id, date)
	)`,
}
