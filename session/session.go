// Package session holds the per-request login context and the preferences
// saved against it.
package session

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/utils"
)

const contextKey = "session"

type Session struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	BranchID string `json:"branch_id"`
	TokenID  string `json:"-"`
}

func FromClaims(claims *utils.SessionClaims) Session {
	return Session{
		ID:       claims.ProfileID,
		Email:    claims.Email,
		Role:     claims.Role,
		BranchID: claims.BranchID,
		TokenID:  claims.ID,
	}
}

func (s Session) IsAdmin() bool    { return s.Role == models.RoleAdmin }
func (s Session) IsBranch() bool   { return s.Role == models.RoleBranch }
func (s Session) IsDelivery() bool { return s.Role == models.RoleDelivery }

// CanSeeBranch reports whether rows of branchID are inside this session's scope.
func (s Session) CanSeeBranch(branchID string) bool {
	if s.IsAdmin() {
		return true
	}
	return s.BranchID != "" && s.BranchID == branchID
}

func Set(c *gin.Context, s Session) {
	c.Set(contextKey, s)
	c.Set("role", s.Role)
	c.Set("user_id", s.ID)
}

func From(c *gin.Context) (Session, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
