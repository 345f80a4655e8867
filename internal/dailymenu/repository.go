package dailymenu

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m *DailyMenu) error
	GetByID(ctx context.Context, id string) (*DailyMenu, error)
	// Update rewrites the content of a draft. Published rows are left
	// untouched and reported as a conflict.
	Update(ctx context.Context, m *DailyMenu) error
	// MarkPublished is a no-op on an already published row.
	MarkPublished(ctx context.Context, id string, at time.Time, cardURL *string) error
	Delete(ctx context.Context, id string) error
	ListForUser(ctx context.Context, userID string) ([]*DailyMenu, error)
}
