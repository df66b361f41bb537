package handler

import (
	"net/http"

	"user-directory-service/internal/usecase/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionKeyHeader is the request header carrying the session token.
const SessionKeyHeader = "SessionKey"

// AuthHandler handles HTTP requests for login and logout
type AuthHandler struct {
	uc  auth.Usecase
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		log: log,
	}
}

// LoginRequest represents the HTTP request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the HTTP response for a successful login
type LoginResponse struct {
	Message    string `json:"message"`
	SessionKey string `json:"sessionKey"`
}

// LogoutResponse represents the HTTP response for a successful logout
type LogoutResponse struct {
	Message string `json:"message"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_body",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), auth.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.log.Warn("Login failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:    resp.Message,
		SessionKey: resp.SessionKey,
	})
}

// Logout handles POST /logout. The session token travels in the SessionKey
// header, not the body.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(SessionKeyHeader)

	resp, err := h.uc.Logout(c.Request.Context(), auth.LogoutRequest{SessionKey: token})
	if err != nil {
		h.log.Warn("Logout failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LogoutResponse{Message: resp.Message})
}
