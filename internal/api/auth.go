package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/delight/backend/internal/service"
	"github.com/pageza/delight/backend/internal/types"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}

// Login exchanges staff credentials for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
