package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type PartnerInput struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,phone10"`
	BranchID    string `json:"branch_id"`
}

type PartnerUpdate struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,phone10"`
	BranchID    *string `json:"branch_id"`
}

type PartnerLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

type PartnerService struct {
	repos    *repository.Repositories
	events   Publisher
	password PasswordPolicy
}

func NewPartnerService(repos *repository.Repositories, events Publisher, password PasswordPolicy) *PartnerService {
	if events == nil {
		events = nopPublisher{}
	}
	return &PartnerService{repos: repos, events: events, password: password}
}

func (s *PartnerService) List(ctx context.Context, sess session.Session) ([]models.DeliveryPartner, error) {
	switch {
	case sess.IsAdmin():
		return s.repos.Partners.List(ctx, "")
	case sess.IsBranch():
		return s.repos.Partners.List(ctx, sess.BranchID)
	}
	return nil, ErrForbidden
}

// Create adds a partner with status active. Branch staff always create in
// their own branch.
func (s *PartnerService) Create(ctx context.Context, sess session.Session, in PartnerInput) (*models.DeliveryPartner, error) {
	branchID := in.BranchID
	switch {
	case sess.IsBranch():
		branchID = sess.BranchID
	case !sess.IsAdmin():
		return nil, ErrForbidden
	}
	if _, ok := models.FindBranch(branchID); !ok {
		return nil, invalid("branch_id", "unknown branch")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "name is required")
	}

	partner := &models.DeliveryPartner{
		Name:        strings.TrimSpace(in.Name),
		PhoneNumber: in.PhoneNumber,
		BranchID:    branchID,
		Status:      models.PartnerActive,
	}
	if err := s.repos.Partners.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}
	s.publish(partner)
	return partner, nil
}

// Update edits name and phone; only admins move a partner between branches.
func (s *PartnerService) Update(ctx context.Context, sess session.Session, id string, in PartnerUpdate) (*models.DeliveryPartner, error) {
	partner, err := s.scopedPartner(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, invalid("name", "name is required")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.PhoneNumber != nil {
		fields["phone_number"] = *in.PhoneNumber
	}
	if in.BranchID != nil && sess.IsAdmin() {
		if _, ok := models.FindBranch(*in.BranchID); !ok {
			return nil, invalid("branch_id", "unknown branch")
		}
		fields["branch_id"] = *in.BranchID
	}
	if len(fields) > 0 {
		if err := s.repos.Partners.Updates(ctx, partner.ID, fields); err != nil {
			return nil, fmt.Errorf("update partner: %w", err)
		}
	}
	return s.reload(ctx, partner.ID)
}

func (s *PartnerService) SetStatus(ctx context.Context, sess session.Session, id, status string) (*models.DeliveryPartner, error) {
	if !IsKnownPartnerStatus(status) {
		return nil, ErrInvalidPartnerStatus
	}
	partner, err := s.scopedPartner(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Partners.Updates(ctx, partner.ID, map[string]interface{}{"status": status}); err != nil {
		return nil, fmt.Errorf("set partner status: %w", err)
	}
	return s.reload(ctx, partner.ID)
}

func (s *PartnerService) Delete(ctx context.Context, sess session.Session, id string) error {
	partner, err := s.scopedPartner(ctx, sess, id)
	if err != nil {
		return err
	}
	if err := s.repos.Partners.Delete(ctx, partner.ID); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Partner %s (%s) deleted by %s", partner.ID, partner.Name, sess.Email)
	return nil
}

// CreateLogin gives a partner a delivery login and links it through
// profile_id. Admin only.
func (s *PartnerService) CreateLogin(ctx context.Context, sess session.Session, id string, in PartnerLoginInput) (*models.Profile, error) {
	if !sess.IsAdmin() {
		return nil, ErrForbidden
	}
	partner, err := s.repos.Partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner.ProfileID != nil && *partner.ProfileID != "" {
		return nil, invalid("profile_id", "partner already has a login")
	}

	email := NormalizeEmail(in.Email)
	if _, err := s.repos.Profiles.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}
	password, err := s.password.Encode(in.Password)
	if err != nil {
		return nil, err
	}

	branchID := partner.BranchID
	profile := &models.Profile{Email: email, Password: password, Role: models.RoleDelivery, BranchID: &branchID}
	err = s.repos.Tx(func(tx *repository.Repositories) error {
		if err := tx.Profiles.Create(ctx, profile); err != nil {
			return fmt.Errorf("create delivery login: %w", err)
		}
		return tx.Partners.Updates(ctx, partner.ID, map[string]interface{}{"profile_id": profile.ID})
	})
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Delivery login %s linked to partner %s", profile.Email, partner.ID)
	return profile, nil
}

func (s *PartnerService) scopedPartner(ctx context.Context, sess session.Session, id string) (*models.DeliveryPartner, error) {
	if !sess.IsAdmin() && !sess.IsBranch() {
		return nil, ErrForbidden
	}
	partner, err := s.repos.Partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.CanSeeBranch(partner.BranchID) {
		return nil, ErrNotFound
	}
	return partner, nil
}

func (s *PartnerService) reload(ctx context.Context, id string) (*models.DeliveryPartner, error) {
	partner, err := s.repos.Partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(partner)
	return partner, nil
}

func (s *PartnerService) publish(p *models.DeliveryPartner) {
	s.events.Publish(hub.Event{Name: hub.EventPartnerUpdate, BranchID: p.BranchID, PartnerID: p.ID, Payload: p})
}
