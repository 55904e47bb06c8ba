package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// AccountController manages branch logins (admin only).
type AccountController struct {
	Accounts *services.AccountService
}

func NewAccountController(accounts *services.AccountService) *AccountController {
	return &AccountController{Accounts: accounts}
}

func (ac *AccountController) GetBranchAccounts(c *gin.Context) {
	profiles, err := ac.Accounts.ListBranchAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of branch accounts", profiles)
}

func (ac *AccountController) CreateBranchAccount(c *gin.Context) {
	var in services.AccountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	profile, err := ac.Accounts.CreateBranchAccount(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.Printf("Branch account %s created for %s", profile.Email, *profile.BranchID)
	utils.RespondJSON(c, http.StatusCreated, "Branch account created", profile)
}

func (ac *AccountController) UpdateBranchAccount(c *gin.Context) {
	var in services.AccountUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	profile, err := ac.Accounts.UpdateBranchAccount(c.Request.Context(), c.Param("profile_id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch account updated", profile)
}

func (ac *AccountController) DeleteBranchAccount(c *gin.Context) {
	if err := ac.Accounts.DeleteBranchAccount(c.Request.Context(), c.Param("profile_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch account deleted", nil)
}
