package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserScopes  = "X-User-Scopes"
	ContextUserScopes = "user_scopes"
)

// AuthMiddleware trusts the scopes forwarded by the bot layer in X-User-Scopes.
type AuthMiddleware interface {
	// CheckUserPermission aborts unless the caller holds every scope in requiredScopes.
	CheckUserPermission(requiredScopes ...string) gin.HandlerFunc
}

type authMiddleware struct {
}

// parseScopes splits a comma separated header, dropping blanks.
func parseScopes(header string) []string {
	var scopes []string
	for _, scope := range strings.Split(header, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

func (a *authMiddleware) CheckUserPermission(requiredScopes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopes := parseScopes(c.Request.Header.Get(HeaderUserScopes))
		if len(scopes) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "X-User-Scopes header is empty",
			})
			return
		}
		for _, required := range requiredScopes {
			if !slices.Contains(scopes, required) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"message": "Permission denied",
				})
				return
			}
		}
		c.Set(ContextUserScopes, scopes)
		c.Next()
	}
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}
