package handlers

import (
	"errors"
	"net/http"

	"tourvia/middleware"
	"tourvia/services/user"
	"tourvia/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes identity endpoints.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates an account and returns a session.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password" binding:"required"`
		DisplayName string `json:"displayName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.Register(c.Request.Context(), input.Email, input.Password, input.DisplayName)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, session)
}

// LoginHandler verifies credentials and returns a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "sign-in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// LogoutHandler revokes the caller's session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	uid := middleware.UserIDFromContext(c)
	if err := h.Service.SignOut(c.Request.Context(), uid); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "sign-out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetMeHandler returns the caller's profile document.
func (h *AuthHandler) GetMeHandler(c *gin.Context) {
	uid := middleware.UserIDFromContext(c)
	profile, err := h.Service.GetByUID(c.Request.Context(), uid)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load profile", err.Error())
		return
	}
	if profile == nil {
		utils.JSONError(c, http.StatusNotFound, "profile not found", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates display name and/or photo URL.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var input struct {
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoURL"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	uid := middleware.UserIDFromContext(c)
	profile, err := h.Service.UpdateProfile(c.Request.Context(), uid, input.DisplayName, input.PhotoURL)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}
