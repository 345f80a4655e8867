package db

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConnect(t *testing.T) {
	t.Run("missing DATABASE_URL", func(t *testing.T) {
		if _, err := Connect(context.Background(), "", quietLogger()); err == nil {
			t.Fatal("expected error for empty dsn")
		}
	})

	t.Run("malformed DATABASE_URL", func(t *testing.T) {
		if _, err := Connect(context.Background(), "postgres://%zz", quietLogger()); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}
		pool, err := Connect(context.Background(), dsn, quietLogger())
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		defer pool.Close()

		// schema bootstrap must be re-runnable
		if err := initSchema(context.Background(), pool); err != nil {
			t.Fatalf("second schema run: %v", err)
		}
	})
}

func TestSchemaEnforcesUniqueness(t *testing.T) {
	var dailyMenus, ingredients string
	for _, stmt := range schema {
		if strings.Contains(stmt, "daily_menus (") {
			dailyMenus = stmt
		}
		if strings.Contains(stmt, "ingredients_name_key") {
			ingredients = stmt
		}
	}
	if !strings.Contains(dailyMenus, "UNIQUE (restaurant_id, date)") {
		t.Error("daily_menus must be unique per restaurant and date")
	}
	if !strings.Contains(ingredients, "lower(name)") {
		t.Error("ingredient names must be unique case-insensitively")
	}
}

func TestSchemaStatementsAreRerunnable(t *testing.T) {
	for i, stmt := range schema {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("statement %d is not guarded with IF NOT EXISTS", i)
		}
	}
}
