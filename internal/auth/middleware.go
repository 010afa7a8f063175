package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/models"
)

var ErrNoToken = errors.New("you must provide an authorization token as 'Authorization: Bearer <token>'")

// contextUser is the gin context key the authenticated user is stored at.
const contextUser = "pennywise-user"

// Middleware authenticates requests with a bearer token.
//
// The user referenced by the token has to exist, tokens of deleted users
// are rejected. On success the user is stored in the request context for
// CurrentUser.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			httputil.NewError(c, http.StatusUnauthorized, ErrNoToken)
			c.Abort()
			return
		}

		claims, err := ParseToken(secret, tokenString)
		if err != nil {
			httputil.NewError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		var user models.User
		err = models.DB.First(&user, claims.UserID).Error
		if err != nil {
			httputil.NewError(c, http.StatusUnauthorized, ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user authenticated by Middleware.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
