package menu

import (
	"context"
	"strings"

	"github.com/keysaw7/MenuMaster-sub000/internal/core"
)

type Service struct {
	repo    Repository
	members core.MembershipChecker
}

func NewService(repo Repository, members core.MembershipChecker) *Service {
	return &Service{repo: repo, members: members}
}

// --------------------------------------------------
// Upsert the standing menu (members only)
// --------------------------------------------------
func (s *Service) Upsert(ctx context.Context, userID, restaurantID string, in UpsertInput) (*Menu, error) {
	if err := ValidateCategories(in.Categories); err != nil {
		return nil, err
	}
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return nil, err
	}

	menuType := strings.TrimSpace(in.Type)
	if menuType == "" {
		menuType = TypeRegular
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Carte"
	}
	categories := in.Categories
	if categories == nil {
		categories = []Category{}
	}

	m := &Menu{
		RestaurantID: restaurantID,
		Name:         name,
		Type:         menuType,
		IsActive:     true,
		Categories:   categories,
	}
	if err := s.repo.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetActive returns the active regular menu.
func (s *Service) GetActive(ctx context.Context, userID, restaurantID string) (*Menu, error) {
	if err := core.RequireMember(ctx, s.members, restaurantID, userID); err != nil {
		return nil, err
	}
	return s.repo.LatestActive(ctx, restaurantID, TypeRegular)
}
