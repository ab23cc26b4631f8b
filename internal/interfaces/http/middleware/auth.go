package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Renderer renders an HTML template to the response.
type Renderer interface {
	HTML(c *gin.Context, code int, name string, data interface{})
}

type AuthMiddleware struct {
	jwtService *auth.JWTService
	renderer   Renderer
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, renderer Renderer, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		renderer:   renderer,
		logger:     logger,
	}
}

// RequireAuth verifies the caller's access token and stores the user ID
// on the request context. The token is read from the session cookie
// first, then from the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, constants.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				m.unauthorized(c, "missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				m.unauthorized(c, "invalid authorization header format")
				return
			}

			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			m.unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)

		c.Next()
	}
}

// unauthorized aborts the request with a 401. Browsers get the rendered
// error page; API clients get the JSON error body.
func (m *AuthMiddleware) unauthorized(c *gin.Context, message string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		m.renderer.HTML(c, http.StatusUnauthorized, "error.html", gin.H{
			"code":    http.StatusUnauthorized,
			"message": message,
		})
	} else {
		utils.ErrorResponse(c, http.StatusUnauthorized, message)
	}
	c.Abort()
}
