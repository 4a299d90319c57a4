package api

import (
	"log"
	"net/http"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/auth"
	"github.com/Domenick1991/airport-ops/internal/session"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service  auth.AuthUseCase
	sessions *session.Manager
}

func NewAuthHandler(service auth.AuthUseCase, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
	router.GET("/user", h.user)
}

func (h *AuthHandler) register(c *gin.Context) {
	var creds domain.Credentials
	if !bindJSON(c, &creds) {
		return
	}
	user, err := h.service.Register(c.Request.Context(), creds)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.sessions.Start(c, user.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) login(c *gin.Context) {
	var creds domain.Credentials
	if !bindJSON(c, &creds) {
		return
	}
	user, err := h.service.Login(c.Request.Context(), creds)
	if auth.IsInvalidCredentials(err) {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Invalid username or password"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.sessions.Start(c, user.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) logout(c *gin.Context) {
	if err := h.sessions.End(c); err != nil {
		log.Printf("WARNING: destroy session: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) user(c *gin.Context) {
	id, err := h.sessions.Resolve(c)
	if err != nil {
		unauthorized(c, err)
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if user == nil {
		unauthorized(c, session.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RequireSession aborts with 401 unless the request carries a live session.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := sessions.Resolve(c); err != nil {
			unauthorized(c, err)
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	if !session.IsNotFound(err) {
		log.Printf("session lookup failed: %v", err)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Message: "Unauthorized"})
}
