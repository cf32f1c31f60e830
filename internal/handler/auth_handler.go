package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/service"
)

// AuthHandler exposes register/login/refresh, the account surface the
// engine sits on top of (SPEC_FULL.md §6).
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	result, err := h.auth.Register(service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResultToDTO(result, h.auth.AccessTokenTTLSeconds()))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	result, err := h.auth.Login(service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResultToDTO(result, h.auth.AccessTokenTTLSeconds()))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	tokens, err := h.auth.RefreshToken(req.RefreshToken)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    h.auth.AccessTokenTTLSeconds(),
	})
}

// Me returns the identity carried by the bearer token, read off the
// AuthMiddleware context (no round trip to the user store needed here).
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	email, _ := c.Get(middleware.EmailKey)
	c.JSON(http.StatusOK, gin.H{
		"id":    userID,
		"email": email,
	})
}

func authResultToDTO(result *service.AuthResult, expiresIn int64) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		ExpiresIn:    expiresIn,
		User: dto.UserDTO{
			ID:          result.User.ID.String(),
			Email:       result.User.Email,
			DisplayName: result.User.DisplayName,
		},
	}
}
