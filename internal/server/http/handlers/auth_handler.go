package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/polkiloo/storeadmin/internal/server/http/dto"
	"github.com/polkiloo/storeadmin/internal/server/http/middleware"
)

// AuthHandler processes login, logout and session lookup.
type AuthHandler struct {
	facade   AuthFacade
	validate *validatorv10.Validate
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, v *validatorv10.Validate) *AuthHandler {
	return &AuthHandler{facade: facade, validate: v}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	session, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:     token,
		Operator:  session.Operator,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context(), CurrentSession(c)); err != nil {
		respondError(c, err)
		return
	}
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	session := CurrentSession(c)
	c.JSON(http.StatusOK, dto.SessionResponse{
		Operator:  session.Operator,
		ExpiresAt: session.ExpiresAt,
	})
}
