package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/reports"
	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type OverviewController struct {
	Overview *services.OverviewService
	Prefs    *session.Store
}

func NewOverviewController(overview *services.OverviewService, prefs *session.Store) *OverviewController {
	return &OverviewController{Overview: overview, Prefs: prefs}
}

func (oc *OverviewController) GetOverview(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	ov, err := oc.Overview.Overview(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Overview", ov)
}

// ExportOverviewPDF -> admin overview as a downloadable report
func (oc *OverviewController) ExportOverviewPDF(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	ov, err := oc.Overview.Overview(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	sc, err := oc.Prefs.Load(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := reports.OverviewPDF(&buf, ov, sc.BranchName); err != nil {
		respondServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("overview-%s.pdf", ov.GeneratedAt.Format("20060102-1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
