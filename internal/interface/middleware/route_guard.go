package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

// RouteGuard protects UI pages: unauthenticated traffic is redirected to the
// sign-in entry point before any page content is served. It relies on the
// same IdentityFromRequest the API gate uses, so the two checks can never
// disagree about a token.
func RouteGuard(jwt *helpers.JWTManager, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := IdentityFromRequest(c, jwt)
		if !ok {
			c.Redirect(http.StatusFound, signInPath)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}
