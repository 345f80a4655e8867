package menu

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
		log:     log.WithField("component", "menu"),
	}
}

// --------------------------------------------------
// GET /restaurants/:id/menu
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	m, err := h.service.GetActive(c.Request.Context(), middleware.UserID(c), restaurantID)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// PUT /restaurants/:id/menu
// --------------------------------------------------
func (h *Handler) Put(c *gin.Context) {
	restaurantID, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	var req UpsertInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	m, err := h.service.Upsert(c.Request.Context(), middleware.UserID(c), restaurantID, req)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"menu_id":       m.ID,
	}).Info("menu saved")
	c.JSON(http.StatusOK, m)
}
