package dailymenu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
	"github.com/keysaw7/MenuMaster-sub000/internal/middleware"
)

type Handler struct {
	service   *Service
	generator *GenerateService
	log       logrus.FieldLogger
}

func NewHandler(service *Service, generator *GenerateService, log logrus.FieldLogger) *Handler {
	return &Handler{
		service:   service,
		generator: generator,
		log:       log.WithField("component", "dailymenu"),
	}
}

// --------------------------------------------------
// POST /daily-menus/generate
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	out, err := h.generator.Generate(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// --------------------------------------------------
// POST /daily-menus
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	var req SaveInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	m, err := h.service.Save(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           m.ID,
		"restaurantId": m.RestaurantID,
		"date":         m.Date,
		"isPublished":  m.IsPublished,
	})
}

// --------------------------------------------------
// GET /daily-menus
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	menus, err := h.service.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// --------------------------------------------------
// GET /daily-menus/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	m, err := h.service.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// PUT /daily-menus/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	var req UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("invalid request body"))
		return
	}

	m, err := h.service.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// POST /daily-menus/:id/publish
// --------------------------------------------------
func (h *Handler) Publish(c *gin.Context) {
	id, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	m, err := h.service.Publish(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	resp := gin.H{
		"id":          m.ID,
		"isPublished": m.IsPublished,
		"publishedAt": m.PublishedAt,
	}
	if m.CardURL != nil {
		resp["cardUrl"] = *m.CardURL
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// DELETE /daily-menus/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := middleware.PathUUID(c, "id")
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.WithField("daily_menu_id", id).Info("daily menu deleted")
	c.JSON(http.StatusOK, gin.H{
		"message": "daily menu deleted",
		"id":      id,
	})
}

// Register mounts the daily menu routes on an authenticated group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/daily-menus")
	g.POST("/generate", h.Generate)
	g.POST("", h.Save)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.POST("/:id/publish", h.Publish)
	g.DELETE("/:id", h.Delete)
}
