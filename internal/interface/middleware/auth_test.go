package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmerKhan-18/TodoApp/internal/interface/middleware"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Auth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.CtxUserIDKey))
	})
	r.GET("/dashboard", middleware.RouteGuard(jwt, "/"), func(c *gin.Context) {
		c.String(http.StatusOK, "page")
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	token, _, err := jwt.Generate("user-1")
	require.NoError(t, err)

	w := doRequest(newAuthRouter(jwt), "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestAuth_RejectsWithOneMessage(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	expiredToken, _, err := expired.Generate("user-1")
	require.NoError(t, err)

	r := newAuthRouter(jwt)

	cases := map[string]string{
		"missing cookie": "",
		"garbage token":  "not.a.token",
		"expired token":  expiredToken,
	}
	var messages []string
	for name, token := range cases {
		w := doRequest(r, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), name)
		messages = append(messages, body.Message)
	}
	// All rejections carry the same message; the response never says which
	// verification step failed.
	for _, m := range messages[1:] {
		assert.Equal(t, messages[0], m)
	}
}

func TestRouteGuard_RedirectsAnonymous(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newAuthRouter(jwt)

	w := doRequest(r, "/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = doRequest(r, "/dashboard", "tampered.token.value")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRouteGuard_PassesAuthenticated(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	token, _, err := jwt.Generate("user-1")
	require.NoError(t, err)

	w := doRequest(newAuthRouter(jwt), "/dashboard", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page", w.Body.String())
}

func TestAuthAndRouteGuard_AgreeOnEveryToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	valid, _, err := jwt.Generate("user-1")
	require.NoError(t, err)
	expiredMgr := helpers.NewJWTManager("test-secret", -time.Minute)
	expired, _, err := expiredMgr.Generate("user-1")
	require.NoError(t, err)

	r := newAuthRouter(jwt)

	for name, token := range map[string]string{
		"valid":   valid,
		"expired": expired,
		"absent":  "",
		"garbage": "x.y.z",
	} {
		api := doRequest(r, "/protected", token)
		page := doRequest(r, "/dashboard", token)

		apiOK := api.Code == http.StatusOK
		pageOK := page.Code == http.StatusOK
		assert.Equal(t, apiOK, pageOK, "gates disagree for %s token", name)
	}
}
