package restaurant

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
		log:     log.WithField("component", "restaurant"),
	}
}

// --------------------------------------------------
// POST /restaurants
// --------------------------------------------------
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.WithField("restaurant_id", restaurant.ID).Info("restaurant created")
	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// GET /restaurants/me
// --------------------------------------------------
func (h *Handler) ListMyRestaurants(c *gin.Context) {
	restaurants, err := h.service.ListMyRestaurants(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// --------------------------------------------------
// GET /restaurants/:id
// --------------------------------------------------
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	restaurant, err := h.service.GetRestaurant(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// DELETE /restaurants/:id
// --------------------------------------------------
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	if err := h.service.DeleteRestaurant(c.Request.Context(), middleware.UserID(c), id); err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.WithField("restaurant_id", id).Info("restaurant deleted")
	c.JSON(http.StatusOK, gin.H{
		"message": "restaurant deleted",
		"id":      id,
	})
}
