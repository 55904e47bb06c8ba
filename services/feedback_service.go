package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
)

type FeedbackInput struct {
	OrderNumber  string   `json:"order_number"`
	CustomerName string   `json:"customer_name" binding:"required"`
	FeedbackType string   `json:"feedback_type"`
	Rating       int      `json:"rating" binding:"required,min=1,max=5"`
	Message      string   `json:"message"`
	BranchID     string   `json:"branch_id" binding:"required"`
	Photos       []string `json:"photos" binding:"max=5,dive,url"`
}

type FeedbackQuery struct {
	BranchID  string
	Type      string
	MinRating int
}

type FeedbackView struct {
	models.Feedback
	Photos   []string `json:"photos"`
	Featured bool     `json:"featured"`
}

type FeedbackService struct {
	repos *repository.Repositories
	prefs *session.Store
}

func NewFeedbackService(repos *repository.Repositories, prefs *session.Store) *FeedbackService {
	return &FeedbackService{repos: repos, prefs: prefs}
}

// Submit stores a customer review from the storefront.
func (s *FeedbackService) Submit(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	if _, ok := models.FindBranch(in.BranchID); !ok {
		return nil, invalid("branch_id", "unknown branch")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalid("rating", "rating must be between 1 and 5")
	}
	feedbackType := strings.TrimSpace(in.FeedbackType)
	if feedbackType == "" {
		feedbackType = "general"
	}

	fb := &models.Feedback{
		OrderNumber:  strings.TrimSpace(in.OrderNumber),
		CustomerName: strings.TrimSpace(in.CustomerName),
		FeedbackType: feedbackType,
		Rating:       in.Rating,
		Message:      strings.TrimSpace(in.Message),
		BranchID:     in.BranchID,
	}
	if len(in.Photos) > 0 {
		raw, err := json.Marshal(in.Photos)
		if err != nil {
			return nil, fmt.Errorf("encode photos: %w", err)
		}
		fb.Photos = datatypes.JSON(raw)
	}
	if err := s.repos.Feedback.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return fb, nil
}

// List is read-only; featured flags come from the caller's saved context.
func (s *FeedbackService) List(ctx context.Context, sc *session.Context, q FeedbackQuery) ([]FeedbackView, error) {
	branchID := q.BranchID
	switch {
	case sc.Session.IsBranch():
		branchID = sc.Session.BranchID
	case !sc.Session.IsAdmin():
		return nil, ErrForbidden
	}

	rows, err := s.repos.Feedback.List(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	views := make([]FeedbackView, 0, len(rows))
	for _, fb := range rows {
		if fb.Rating < q.MinRating {
			continue
		}
		if q.Type != "" && q.Type != "all" && !strings.EqualFold(fb.FeedbackType, q.Type) {
			continue
		}
		views = append(views, FeedbackView{
			Feedback: fb,
			Photos:   decodePhotos(fb.Photos),
			Featured: sc.IsFeatured(fb.ID),
		})
	}
	return views, nil
}

// ToggleFeatured flips one review in the caller's featured set and saves it.
func (s *FeedbackService) ToggleFeatured(ctx context.Context, sc *session.Context, id uint) (bool, error) {
	if !sc.Session.IsAdmin() && !sc.Session.IsBranch() {
		return false, ErrForbidden
	}
	fb, err := s.repos.Feedback.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !sc.Session.CanSeeBranch(fb.BranchID) {
		return false, ErrNotFound
	}

	featured := sc.ToggleFeatured(fb.ID)
	if err := s.prefs.Save(ctx, sc); err != nil {
		return false, err
	}
	return featured, nil
}

func decodePhotos(raw datatypes.JSON) []string {
	photos := []string{}
	for _, p := range NormalizeItems(raw) {
		if s, ok := p.(string); ok {
			photos = append(photos, s)
		}
	}
	return photos
}
