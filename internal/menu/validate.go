package menu

import (
	"fmt"
	"strings"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

// ValidateCategories checks a menu body before it is stored.
func ValidateCategories(categories []Category) error {
	for i, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return apperr.Validation(fmt.Sprintf("category %d: name is required", i+1))
		}
		for j, item := range cat.Items {
			if strings.TrimSpace(item.Name) == "" {
				return apperr.Validation(fmt.Sprintf("category %q item %d: name is required", cat.Name, j+1))
			}
			if item.Price < 0 {
				return apperr.Validation(fmt.Sprintf("category %q item %q: price must not be negative", cat.Name, item.Name))
			}
		}
	}
	return nil
}
