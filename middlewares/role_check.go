package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.From(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			return
		}
		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}
		utils.AbortWithError(c, http.StatusForbidden, fmt.Errorf("%s access required", strings.Join(roles, " or ")))
	}
}
