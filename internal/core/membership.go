package core

import (
	"context"
	"fmt"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

// MembershipChecker answers whether a user is linked to a restaurant.
// Membership is the only authorization rule for restaurant-owned data.
type MembershipChecker interface {
	IsMember(ctx context.Context, restaurantID, userID string) (bool, error)
}

// RequireMember returns an authorization error when userID has no
// membership row for restaurantID.
func RequireMember(ctx context.Context, m MembershipChecker, restaurantID, userID string) error {
	ok, err := m.IsMember(ctx, restaurantID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return apperr.Authorization("you do not have access to this restaurant")
	}
	return nil
}
