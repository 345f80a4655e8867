package restaurant

import (
	"context"
	"strings"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cuisine     []string `json:"cuisine"`
	Address     Address  `json:"address"`
	Contact     Contact  `json:"contact"`
	Hours       Hours    `json:"hours"`
	Settings    Settings `json:"settings"`
	Features    Features `json:"features"`
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(ctx context.Context, ownerID string, in CreateInput) (*Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	cuisine := make([]string, 0, len(in.Cuisine))
	for _, c := range in.Cuisine {
		if c = strings.TrimSpace(c); c != "" {
			cuisine = append(cuisine, c)
		}
	}

	restaurant := &Restaurant{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Cuisine:     cuisine,
		Address:     in.Address,
		Contact:     in.Contact,
		Hours:       in.Hours,
		Settings:    in.Settings,
		Features:    in.Features,
	}

	if err := s.repo.Create(ctx, restaurant, ownerID); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// List restaurants the user belongs to
// --------------------------------------------------
func (s *Service) ListMyRestaurants(ctx context.Context, userID string) ([]*Restaurant, error) {
	return s.repo.ListByMember(ctx, userID)
}

// GetRestaurant returns notFound for unknown ids and authorization errors
// for callers without a membership row.
func (s *Service) GetRestaurant(ctx context.Context, userID, id string) (*Restaurant, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := core.RequireMember(ctx, s.repo, id, userID); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteRestaurant removes the restaurant with its menus, inventory,
// daily menus and memberships.
func (s *Service) DeleteRestaurant(ctx context.Context, userID, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := core.RequireMember(ctx, s.repo, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// IsMember makes the service usable as a core.MembershipChecker.
func (s *Service) IsMember(ctx context.Context, restaurantID, userID string) (bool, error) {
	return s.repo.IsMember(ctx, restaurantID, userID)
}
