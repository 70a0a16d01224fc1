package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UmerKhan-18/TodoApp/config"
	"github.com/UmerKhan-18/TodoApp/internal/application"
	"github.com/UmerKhan-18/TodoApp/internal/domain/entity"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
	"github.com/UmerKhan-18/TodoApp/pkg/mailer"
	"github.com/UmerKhan-18/TodoApp/pkg/response"
	"github.com/UmerKhan-18/TodoApp/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cfg     *config.Config
	Cookies *helpers.CookieManager
	Pub     *helpers.RabbitPublisher
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{
		Svc:     svc,
		Logger:  logger,
		Cfg:     cfg,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		Pub:     pub,
	}
}

type signUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}

// SignUp handles POST /api/auth/signUp
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Error[any](c, http.StatusInternalServerError, "signup failed", nil)
		return
	}

	// Welcome email rides the queue; a broker hiccup must not fail the signup.
	if h.Pub != nil && h.Cfg.MailSendEnabled {
		if err := h.Pub.PublishJSON(c.Request.Context(), mailer.WelcomeJob(u.Email, u.Username)); err != nil {
			h.Logger.WithError(err).Warn("welcome email enqueue failed")
		}
	}

	response.Success(c, http.StatusCreated, gin.H{"user": userView(u)}, "user registered successfully")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// One message for both unknown email and wrong password.
			response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		return
	}

	h.Cookies.SetToken(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{"user": userView(u)}, "login successful")
}

// Logout handles POST /api/auth/logout. It succeeds for anonymous callers
// too: clearing a cookie that is not there is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out successfully")
}
