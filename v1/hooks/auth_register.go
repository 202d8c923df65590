package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
)

type AuthRegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AuthRegister(
	accountsService *services.AccountsService,
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthRegisterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Username) == 0 || len(req.Email) == 0 || len(req.Password) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
			return
		}

		// Create the account
		user, err := accountsService.Register(
			req.Username,
			req.Email,
			req.Password,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already taken"})
			return
		}

		// Serialize the whoami info so the new user is logged in right away
		whoami, err := serializeWhoAmI(
			user,
			authTokensService,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the whoami info for this user
		c.JSON(http.StatusOK, gin.H{
			"data": whoami,
		})

	}
}
