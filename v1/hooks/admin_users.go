package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

func AdminUsersList(
	accountsService *services.AccountsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// List every non-admin account
		users, err := accountsService.ListTravellers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Serialize and return the users
		results := make([]map[string]interface{}, 0, len(users))
		for _, user := range users {
			results = append(results, map[string]interface{}{
				"id":           user.ID,
				"username":     user.Username,
				"email":        user.Email,
				"display_name": user.DisplayName(),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"data": results,
		})

	}
}

type AdminUserDeleteReq struct {
	UserID uint64 `json:"user_id"`
}

func AdminUserDelete(
	accountsService *services.AccountsService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminUserDeleteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Delete the account. Admin accounts never match the delete
		// query, so they cannot be removed through this hook.
		if err := accountsService.DeleteUser(req.UserID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Otherwise return something successfully
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{},
		})

	}
}
