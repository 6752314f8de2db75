package handlers

import (
	"net/http"

	"darshanam/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler bridges sign-in/sign-out to the managed backend's auth.
type AuthHandler struct {
	Sessions session.SessionService
	Logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(sessions session.SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Logger: logger}
}

// SignInHandler exchanges credentials for a backend-issued access token.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Sessions.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.Logger.Warn("sign-in rejected", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SignOutHandler revokes the current token and evicts its session.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	token := tokenFromCtx(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.Sessions.SignOut(c.Request.Context(), token); err != nil {
		h.Logger.Warn("sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign out failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedOut": true})
}

// MeHandler returns the resolved session for the current token.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	sess := sessionFromCtx(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, sess)
}
