package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

const claimsKey = "claims"

// ProfileFinder loads the account behind a token.
type ProfileFinder interface {
	FindByID(ctx context.Context, id string) (*models.Profile, error)
}

// AuthMiddleware reads a Bearer token (or ?token= for websocket upgrades)
// and puts the session on the context. With a non-nil profiles finder the
// role and branch come from the current account row, so a deleted or
// re-branched login loses its old scope at once.
func AuthMiddleware(tokens *utils.TokenManager, profiles ProfileFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, errors.New("authorization token missing"))
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err)
			return
		}

		sess := session.FromClaims(claims)
		if profiles != nil {
			profile, err := profiles.FindByID(c.Request.Context(), claims.ProfileID)
			if errors.Is(err, repository.ErrNotFound) {
				utils.AbortWithError(c, http.StatusUnauthorized, errors.New("account no longer exists"))
				return
			}
			if err != nil {
				utils.ErrorLogger.Errorf("load profile %s: %v", claims.ProfileID, err)
				utils.AbortWithError(c, http.StatusInternalServerError, errors.New("internal server error"))
				return
			}
			sess = refresh(sess, profile)
		}

		session.Set(c, sess)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func refresh(sess session.Session, profile *models.Profile) session.Session {
	sess.Email = profile.Email
	sess.Role = profile.Role
	sess.BranchID = ""
	if profile.BranchID != nil {
		sess.BranchID = *profile.BranchID
	}
	return sess
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		return ""
	}
	return c.Query("token")
}

// Claims returns the token claims stored by AuthMiddleware.
func Claims(c *gin.Context) (*utils.SessionClaims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.SessionClaims)
	return claims, ok
}
