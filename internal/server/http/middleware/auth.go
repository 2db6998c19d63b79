package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

const (
	// SessionContextKey is a gin context key for the authenticated session.
	SessionContextKey = "session"
	authCookieName    = "storeadmin_session"
)

// SessionResolver resolves a client token to a live session.
type SessionResolver interface {
	Session(ctx context.Context, token string) (*model.Session, error)
}

// SessionRequired ensures the operator is logged in before accessing handler.
func SessionRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
			return
		}

		session, err := resolver.Session(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes session token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
