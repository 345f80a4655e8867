package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

// PathUUID reads a path parameter that must hold a UUID.
func PathUUID(c *gin.Context, name string) (string, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", apperr.Validation("invalid " + name)
	}
	return id.String(), nil
}
