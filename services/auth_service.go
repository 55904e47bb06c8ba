package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   session.Session `json:"session"`
}

type AuthService struct {
	repos  *repository.Repositories
	tokens *utils.TokenManager
}

func NewAuthService(repos *repository.Repositories, tokens *utils.TokenManager) *AuthService {
	return &AuthService{repos: repos, tokens: tokens}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	profile, err := s.repos.Profiles.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if !CheckPassword(profile.Password, password) {
		return nil, ErrInvalidCredentials
	}

	branchID := ""
	if profile.BranchID != nil {
		branchID = *profile.BranchID
	}
	token, claims, err := s.tokens.Generate(profile.ID, profile.Email, profile.Role, branchID)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", profile.Email, profile.Role)
	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Session:   session.FromClaims(claims),
	}, nil
}

// Logout revokes the token behind claims.
func (s *AuthService) Logout(claims *utils.SessionClaims) {
	s.tokens.Revoke(claims)
}

// CheckPassword accepts bcrypt hashes and the legacy plaintext rows.
func CheckPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// PasswordPolicy decides how account writes store passwords.
type PasswordPolicy struct {
	Hash bool
}

func (p PasswordPolicy) Encode(plain string) (string, error) {
	if !p.Hash {
		return plain, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
