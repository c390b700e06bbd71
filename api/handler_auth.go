package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_pos/internal/users"
)

type authHandler struct {
	userService *users.Service
	logger      *zap.Logger
}

func newAuthHandler(userService *users.Service, logger *zap.Logger) *authHandler {
	return &authHandler{
		userService: userService,
		logger:      logger,
	}
}

// handleLogin handles POST /auth/login. On success it returns the user and
// a session token the client sends back as a Bearer header.
func (h *authHandler) handleLogin(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind login request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	user, token, err := h.userService.Authenticate(req.Name, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.String("name", req.Name), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
