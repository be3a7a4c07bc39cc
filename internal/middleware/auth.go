package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tarang07q/NewsPlus/internal/models"
	"github.com/tarang07q/NewsPlus/internal/utils"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "userId"
	ContextEmail  = "userEmail"
)

// Authenticator resolves a bearer token to a session; nil session means
// unauthenticated. Implemented by services.UserService.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// Auth guards a route group: it requires a valid Authorization bearer
// token and publishes the session's user id and email into the context.
func Auth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.ErrorResponse(c, 401, "Unauthorized")
			c.Abort()
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.ErrorResponse(c, 500, "Failed to verify session: "+err.Error())
			c.Abort()
			return
		}
		if session == nil {
			utils.ErrorResponse(c, 401, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextEmail, session.Email)
		c.Next()
	}
}
