package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
)

type AccountInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
	BranchID string `json:"branch_id" binding:"required"`
}

type AccountUpdate struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=4"`
	BranchID *string `json:"branch_id"`
}

// AccountService manages branch logins. Only admins reach it.
type AccountService struct {
	repos    *repository.Repositories
	password PasswordPolicy
}

func NewAccountService(repos *repository.Repositories, password PasswordPolicy) *AccountService {
	return &AccountService{repos: repos, password: password}
}

func (s *AccountService) ListBranchAccounts(ctx context.Context) ([]models.Profile, error) {
	return s.repos.Profiles.ListByRole(ctx, models.RoleBranch)
}

func (s *AccountService) CreateBranchAccount(ctx context.Context, in AccountInput) (*models.Profile, error) {
	if _, ok := models.FindBranch(in.BranchID); !ok {
		return nil, invalid("branch_id", "unknown branch")
	}
	email := NormalizeEmail(in.Email)
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}
	password, err := s.password.Encode(in.Password)
	if err != nil {
		return nil, err
	}

	branchID := in.BranchID
	profile := &models.Profile{Email: email, Password: password, Role: models.RoleBranch, BranchID: &branchID}
	if err := s.repos.Profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create branch account: %w", err)
	}
	return profile, nil
}

func (s *AccountService) UpdateBranchAccount(ctx context.Context, id string, in AccountUpdate) (*models.Profile, error) {
	profile, err := s.branchProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		if err := s.ensureEmailFree(ctx, email, profile.ID); err != nil {
			return nil, err
		}
		fields["email"] = email
	}
	if in.Password != nil {
		password, err := s.password.Encode(*in.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = password
	}
	if in.BranchID != nil {
		if _, ok := models.FindBranch(*in.BranchID); !ok {
			return nil, invalid("branch_id", "unknown branch")
		}
		fields["branch_id"] = *in.BranchID
	}
	if len(fields) == 0 {
		return profile, nil
	}

	if err := s.repos.Profiles.Updates(ctx, profile.ID, fields); err != nil {
		return nil, fmt.Errorf("update branch account: %w", err)
	}
	return s.repos.Profiles.FindByID(ctx, profile.ID)
}

func (s *AccountService) DeleteBranchAccount(ctx context.Context, id string) error {
	profile, err := s.branchProfile(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Profiles.Delete(ctx, profile.ID)
}

func (s *AccountService) branchProfile(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.repos.Profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Role != models.RoleBranch {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *AccountService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email", "email is required")
	}
	existing, err := s.repos.Profiles.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}
