package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML shell pages. They are presentation glue: the
// actual data flows through the JSON API with the same token cookie.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

func (h *PageHandler) SignIn(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{"title": "Sign In"})
}

func (h *PageHandler) SignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"title": "Sign Up"})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"title": "Dashboard"})
}

func (h *PageHandler) EditTodo(c *gin.Context) {
	c.HTML(http.StatusOK, "edit.html", gin.H{"title": "Edit Todo", "id": c.Param("id")})
}
