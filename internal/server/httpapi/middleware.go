package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// bearerAuth extracts the bearer token, resolves its user, and injects the
// record into the request context. Every failure mode collapses to the same
// generic 401 so a caller learns nothing about why a token was rejected.
func (s *Server) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {

		header := c.GetHeader(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerSchemePrefix)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}

		user, err := s.users.ResolveCurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}
