package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
	"github.com/UmerKhan-18/TodoApp/pkg/response"
)

// CtxUserIDKey is the gin context key the resolved identity is stored under.
const CtxUserIDKey = "userID"

// IdentityFromRequest is the single verification point shared by the API
// gate and the page route guard. A missing, malformed, tampered or expired
// token cookie all yield ("", false); the caller decides what to do with an
// anonymous request.
func IdentityFromRequest(c *gin.Context, jwt *helpers.JWTManager) (string, bool) {
	token, err := c.Cookie(helpers.TokenCookieName)
	if err != nil {
		return "", false
	}
	return jwt.Identity(token)
}

// Auth gates API routes: requests without a resolvable identity get a 401
// with a message that never says why verification failed.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := IdentityFromRequest(c, jwt)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}
