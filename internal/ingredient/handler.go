package ingredient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/middleware"
)

type Handler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHandler(service *Service, log logrus.FieldLogger) *Handler {
	return &Handler{
		service: service,
		log:     log.WithField("component", "ingredient"),
	}
}

// GET /restaurants/:id/ingredients
func (h *Handler) List(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	items, err := h.service.ListInventory(c.Request.Context(), middleware.UserID(c), restaurantID)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /restaurants/:id/ingredients
func (h *Handler) Add(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	var req AddInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	item, err := h.service.AddToInventory(c.Request.Context(), middleware.UserID(c), restaurantID, req)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PATCH /restaurants/:id/ingredients/:inventoryId
func (h *Handler) SetAvailability(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	inventoryID, err := middleware.PathUUID(c, "inventoryId")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	var req struct {
		IsAvailable *bool `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		apperr.Respond(c, h.log, apperr.Validation("isAvailable is required"))
		return
	}

	item, err := h.service.SetAvailability(
		c.Request.Context(),
		middleware.UserID(c),
		restaurantID,
		inventoryID,
		*req.IsAvailable,
	)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /restaurants/:id/ingredients/:inventoryId
func (h *Handler) Delete(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	inventoryID, err := middleware.PathUUID(c, "inventoryId")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	if err := h.service.DeleteInventoryItem(c.Request.Context(), middleware.UserID(c), restaurantID, inventoryID); err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "inventory item deleted",
		"id":      inventoryID,
	})
}

// DELETE /restaurants/:id/ingredients
func (h *Handler) DeleteAll(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	n, err := h.service.DeleteAllForRestaurant(c.Request.Context(), middleware.UserID(c), restaurantID)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"deleted":       n,
	}).Info("inventory cleared")

	c.JSON(http.StatusOK, gin.H{
		"message": "inventory cleared",
		"deleted": n,
	})
}
