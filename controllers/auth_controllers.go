package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/middlewares"
	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type AuthController struct {
	Auth  *services.AuthService
	Prefs *session.Store
}

func NewAuthController(auth *services.AuthService, prefs *session.Store) *AuthController {
	return &AuthController{Auth: auth, Prefs: prefs}
}

// Login -> token + session
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := ac.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorLogger.Warnf("failed login for %s from %s", services.NormalizeEmail(input.Email), c.ClientIP())
		}
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", result)
}

func (ac *AuthController) Logout(c *gin.Context) {
	claims, ok := middlewares.Claims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	ac.Auth.Logout(claims)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Me returns the session context: login plus saved preferences.
func (ac *AuthController) Me(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	sc, err := ac.Prefs.Load(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session", sc)
}
