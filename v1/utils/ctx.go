package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
)

// ctxUserKey is the gin context key the authenticated user is stored under
const ctxUserKey = "auth_user"

// CtxSetUser stashes the authenticated user on the request context
func CtxSetUser(c *gin.Context, user *models.User) {
	c.Set(ctxUserKey, user)
}

// CtxGetUser gets the authenticated user from the request context, or nil
// if the request carried no valid token
func CtxGetUser(c *gin.Context) *models.User {
	val, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
