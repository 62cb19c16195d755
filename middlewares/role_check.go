package middlewares

import (
	"fmt"
	"net/http"

	"github.com/farhanhossain/lunch-vote/utils"
	"github.com/gin-gonic/gin"
)

// RequireRole allows the request through only when the authenticated role is
// in the allow set. Denials carry a generic message so the response does not
// leak which roles the route expects.
func RequireRole(allowed ...string) gin.HandlerFunc {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, _ := roleValue.(string)
		if _, ok := allowSet[role]; !ok {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("forbidden"))
			c.Abort()
			return
		}

		c.Next()
	}
}
