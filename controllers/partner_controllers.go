package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type PartnerController struct {
	Partners *services.PartnerService
}

func NewPartnerController(partners *services.PartnerService) *PartnerController {
	return &PartnerController{Partners: partners}
}

func (pc *PartnerController) GetPartners(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	partners, err := pc.Partners.List(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of delivery partners", partners)
}

func (pc *PartnerController) CreatePartner(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var in services.PartnerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	partner, err := pc.Partners.Create(c.Request.Context(), sess, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Delivery partner created", partner)
}

func (pc *PartnerController) UpdatePartner(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var in services.PartnerUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	partner, err := pc.Partners.Update(c.Request.Context(), sess, c.Param("partner_id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery partner updated", partner)
}

func (pc *PartnerController) UpdatePartnerStatus(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	partner, err := pc.Partners.SetStatus(c.Request.Context(), sess, c.Param("partner_id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery partner status updated", partner)
}

func (pc *PartnerController) DeletePartner(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := pc.Partners.Delete(c.Request.Context(), sess, c.Param("partner_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery partner deleted", nil)
}

// CreatePartnerLogin -> admin only; links a new delivery profile.
func (pc *PartnerController) CreatePartnerLogin(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var in services.PartnerLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	profile, err := pc.Partners.CreateLogin(c.Request.Context(), sess, c.Param("partner_id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Delivery login created", profile)
}
