package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

// SessionClaims carries the logged-in profile: {id, email, role, branch_id}.
type SessionClaims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	BranchID  string `json:"branch_id,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	revoked *RevocationList
}

func NewTokenManager(secret string, ttl time.Duration, revoked *RevocationList) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if revoked == nil {
		revoked = NewRevocationList()
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, revoked: revoked}
}

func (tm *TokenManager) Generate(profileID, email, role, branchID string) (string, *SessionClaims, error) {
	now := time.Now()
	claims := &SessionClaims{
		ProfileID: profileID,
		Email:     email,
		Role:      role,
		BranchID:  branchID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   profileID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "sangem-ordering",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

func (tm *TokenManager) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.ProfileID == "" {
		return nil, ErrInvalidToken
	}
	if tm.revoked.IsRevoked(claims.ID) {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// Revoke blocks the token until its own expiry.
func (tm *TokenManager) Revoke(claims *SessionClaims) {
	expiry := time.Now().Add(tm.ttl)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	tm.revoked.Revoke(claims.ID, expiry)
}

func (tm *TokenManager) Revocations() *RevocationList {
	return tm.revoked
}
