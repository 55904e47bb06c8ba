package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// PreferenceController edits the branch display-name overrides.
type PreferenceController struct {
	Prefs *session.Store
}

func NewPreferenceController(prefs *session.Store) *PreferenceController {
	return &PreferenceController{Prefs: prefs}
}

func (pc *PreferenceController) GetBranchNames(c *gin.Context) {
	names, err := pc.Prefs.LoadBranchNames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch names", gin.H{
		"overrides": names,
		"branches":  models.BranchesWithNames(names),
	})
}

// UpdateBranchNames replaces the override map. An empty name removes it.
func (pc *PreferenceController) UpdateBranchNames(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sc, err := pc.Prefs.Load(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	names := map[string]string{}
	for id, name := range req {
		if _, ok := models.FindBranch(id); !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown branch "+id))
			return
		}
		if name = strings.TrimSpace(name); name != "" {
			names[id] = name
		}
	}
	sc.BranchNames = names
	if err := pc.Prefs.Save(c.Request.Context(), sc); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch names updated", gin.H{
		"overrides": names,
		"branches":  models.BranchesWithNames(names),
	})
}
