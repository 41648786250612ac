package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "expert-booking/internal/handler/dto/request"
	resdto "expert-booking/internal/handler/dto/response"
	"expert-booking/internal/handler/middleware"
	"expert-booking/internal/pkg/config"
	"expert-booking/internal/pkg/cookie"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
	}
}

// @Summary Account login
// @Description Login with email and password; clients, providers and admins share this endpoint
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, errs.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	duration, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	cookie.SetTokenCookie(c, h.cfg.Cookie, result.Token, duration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Account:     resdto.FromAccountView(result.Account),
	})
}

// @Summary Account logout
// @Description Clear the token cookie; token invalidation is client-side
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current account
// @Description Return the resolved identity of the caller
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    ident.ID.String(),
		"role":  ident.Role.String(),
		"email": ident.Email,
	})
}
