package handlers

import (
	"errors"
	"net/http"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required" example:"kim01"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Ok          bool   `json:"ok"`
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// Login godoc
// @Summary      Log in with user id and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, token, err := h.authService.Login(req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			okFalse(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Ok:          true,
		UserID:      user.ID,
		Name:        user.Name,
		AccessToken: token,
		TokenType:   "bearer",
	})
}
