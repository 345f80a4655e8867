package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

type Handler struct {
	service *Service
	tokens  *TokenIssuer
	log     logrus.FieldLogger
}

func NewHandler(service *Service, tokens *TokenIssuer, log logrus.FieldLogger) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
		log:     log.WithField("component", "auth"),
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindError turns the first failed binding rule into a client message.
func bindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("invalid request")
	}
	switch fieldErrs[0].Tag() {
	case "required":
		return apperr.Validation("missing required fields")
	case "email":
		return apperr.Validation("invalid email address")
	case "min":
		return apperr.Validation("password must be at least 8 characters")
	}
	return apperr.Validation("invalid request")
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, bindError(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	h.log.WithField("user_id", user.ID).Info("user registered")

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, bindError(err))
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
