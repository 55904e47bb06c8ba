package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// FeedbackController is read-only apart from the caller's featured set.
type FeedbackController struct {
	Feedback *services.FeedbackService
	Prefs    *session.Store
}

func NewFeedbackController(feedback *services.FeedbackService, prefs *session.Store) *FeedbackController {
	return &FeedbackController{Feedback: feedback, Prefs: prefs}
}

// GetFeedback -> ?min_rating=&type=&branch_id=
func (fc *FeedbackController) GetFeedback(c *gin.Context) {
	sc, ok := fc.loadContext(c)
	if !ok {
		return
	}
	minRating, _ := strconv.Atoi(c.Query("min_rating"))

	rows, err := fc.Feedback.List(c.Request.Context(), sc, services.FeedbackQuery{
		BranchID:  c.Query("branch_id"),
		Type:      c.Query("type"),
		MinRating: minRating,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of feedback", rows)
}

func (fc *FeedbackController) ToggleFeatured(c *gin.Context) {
	sc, ok := fc.loadContext(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "feedback_id")
	if !ok {
		return
	}

	featured, err := fc.Feedback.ToggleFeatured(c.Request.Context(), sc, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Featured feedback updated", gin.H{
		"feedback_id": id,
		"featured":    featured,
	})
}

func (fc *FeedbackController) loadContext(c *gin.Context) (*session.Context, bool) {
	sess, ok := currentSession(c)
	if !ok {
		return nil, false
	}
	sc, err := fc.Prefs.Load(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	return sc, true
}
