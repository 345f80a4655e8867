package weather

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	classifier *Classifier
}

func NewHandler(classifier *Classifier) *Handler {
	return &Handler{classifier: classifier}
}

// GET /weather?city=&date=
func (h *Handler) GetWeather(c *gin.Context) {
	snap := h.classifier.Classify(
		c.Request.Context(),
		c.DefaultQuery("city", DefaultCity),
		c.Query("date"),
	)
	c.JSON(http.StatusOK, snap)
}
