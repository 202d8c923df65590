package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/utils"
)

// CheckAuth resolves the bearer token on the request, if any, and stashes
// the matching user on the context. It never rejects; gating happens in
// RequireLogin and RequireAdmin.
func CheckAuth(
	authTokensService *services.AuthTokensService,
	accountsService *services.AccountsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Pull the token off the Authorization header
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if len(token) == 0 {
			c.Next()
			return
		}

		// Resolve the user the token was issued to. A stale or bogus
		// token just leaves the request anonymous.
		userID, err := authTokensService.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}
		user, err := accountsService.GetUserByID(userID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		utils.CtxSetUser(c, user)
		c.Next()

	}
}

// RequireLogin rejects requests that carry no authenticated user
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CtxGetUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests from non-administrators
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
